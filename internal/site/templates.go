package site

// pageTemplate is the single-page portfolio layout. Section visibility
// follows the document: required sections always render, optional lists
// render only when non-empty.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
<style>{{.ThemeCSS}}</style>
</head>
<body class="{{.BodyClass}}">

<header id="title" class="hero section">
  {{with .Doc.Hero.Image}}<img class="hero-image" src="{{.}}" alt="">{{end}}
  <h1 class="{{.Doc.Hero.Size}}">{{.Doc.Hero.Title}}</h1>
  {{with .Doc.Hero.Subtitle}}<p class="hero-subtitle">{{.}}</p>{{end}}
  {{with .Doc.Hero.Description}}<div class="hero-description">{{rich .}}</div>{{end}}
  {{with .Doc.Hero.SocialLinks}}
  <nav class="social-links">
    {{with .GitHub}}<a href="{{.}}">GitHub</a>{{end}}
    {{with .LinkedIn}}<a href="{{.}}">LinkedIn</a>{{end}}
    {{with .Twitter}}<a href="{{.}}">Twitter</a>{{end}}
  </nav>
  {{end}}
</header>

<section id="introduction" class="section">
  <h2 class="{{.Doc.Introduction.Size}}">{{.Doc.Introduction.Title}}</h2>
  {{range .Doc.Introduction.Content}}
  <div class="paragraph">{{rich .Text}}</div>
  {{end}}
  {{with .Doc.Introduction.Journey}}<div class="journey">{{rich .}}</div>{{end}}
  {{with .Doc.Introduction.Education}}
  <ul class="education-summary">
    {{range .}}<li><strong>{{.Degree}}</strong>, {{.Institution}} <span class="period">{{.Period}}</span></li>{{end}}
  </ul>
  {{end}}
</section>

{{if .Doc.Education.Items}}
<section id="education" class="section">
  <h2 class="{{.Doc.Education.Size}}">{{.Doc.Education.Title}}</h2>
  {{range .Doc.Education.Items}}
  <article class="card">
    <h3>{{.Institution}}</h3>
    <p class="card-subtitle">{{.Degree}} <span class="period">{{period .TimePeriod}}</span></p>
    {{with .GPA}}<p class="gpa">GPA: {{.}}</p>{{end}}
    {{with .Activities}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{with .Achievements}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </article>
  {{end}}
</section>
{{end}}

{{if .Doc.WorkExperience.Items}}
<section id="workExperience" class="section">
  <h2 class="{{.Doc.WorkExperience.Size}}">{{.Doc.WorkExperience.Title}}</h2>
  {{range .Doc.WorkExperience.Items}}
  <article class="card">
    <h3>{{.Role}}</h3>
    <p class="card-subtitle">{{.Company}}, {{.Location}} <span class="period">{{period .TimePeriod}}</span></p>
    <ul>{{range .Points}}<li>{{.}}</li>{{end}}</ul>
  </article>
  {{end}}
  {{with .Doc.WorkExperience.Skills}}
  <div class="skill-cards">
    {{range .}}
    <div class="skill-card">
      <h4>{{.Icon}} {{.Title}}</h4>
      <p>{{join .Items ", "}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Doc.Projects.Items}}
<section id="projects" class="section">
  <h2 class="{{.Doc.Projects.Size}}">{{.Doc.Projects.Title}}</h2>
  <div class="project-grid">
    {{range .Doc.Projects.Items}}
    <article class="card project">
      {{with .Photo}}<img src="{{.}}" alt="">{{end}}
      <h3>{{.Title}}</h3>
      <div class="project-description">{{rich .Description}}</div>
      {{with .Technologies}}
      <div class="tags">{{range .}}<span class="tag">{{.}}</span>{{end}}</div>
      {{end}}
      <nav class="project-links">
        {{with .Links.GitHub}}<a href="{{.}}">Code</a>{{end}}
        {{with .Links.Demo}}<a href="{{.}}">Demo</a>{{end}}
      </nav>
    </article>
    {{end}}
  </div>
</section>
{{end}}

{{if .Doc.Skills.Categories}}
<section id="skills" class="section">
  <h2 class="{{.Doc.Skills.Size}}">{{.Doc.Skills.Title}}</h2>
  {{range $category, $skills := .Doc.Skills.Categories}}
  <div class="skill-category">
    <h3>{{$category}}</h3>
    <div class="tags">
      {{range $skills}}<span class="tag">{{with .Icon}}{{.}} {{end}}{{.Name}}</span>{{end}}
    </div>
  </div>
  {{end}}
</section>
{{end}}

<section id="contacts" class="section">
  <h2 class="{{.Doc.Contacts.Size}}">{{.Doc.Contacts.Title}}</h2>
  <ul class="contact-list">
    {{with .Doc.Contacts.Details.Email}}<li><a href="mailto:{{.}}">{{.}}</a></li>{{end}}
    {{with .Doc.Contacts.Details.Phone}}<li>{{.}}</li>{{end}}
    {{with .Doc.Contacts.Details.LinkedIn}}<li><a href="{{.}}">LinkedIn</a></li>{{end}}
    {{with .Doc.Contacts.Details.GitHub}}<li><a href="{{.}}">GitHub</a></li>{{end}}
    {{with .Doc.Contacts.Details.Twitter}}<li><a href="{{.}}">Twitter</a></li>{{end}}
    {{with .Doc.Contacts.Details.Location}}<li>{{.}}</li>{{end}}
  </ul>
  {{with .Doc.Contacts.Details.MapURL}}<iframe class="map" src="{{.}}" loading="lazy"></iframe>{{end}}
</section>

{{if or .Doc.Awards.Awards .Doc.Awards.Certifications .Doc.Awards.Blogs}}
<section id="awardsCertifications" class="section">
  <h2 class="{{.Doc.Awards.Size}}">{{.Doc.Awards.Title}}</h2>
  {{with .Doc.Awards.Awards}}
  <h3>Awards</h3>
  {{range .}}
  <article class="card">
    {{with .Image}}<img src="{{.}}" alt="">{{end}}
    <h4>{{.Title}}</h4>
    <p class="card-subtitle">{{.Organization}} <span class="period">{{.Date}}</span></p>
    <p>{{.Description}}</p>
  </article>
  {{end}}
  {{end}}
  {{with .Doc.Awards.Certifications}}
  <h3>Certifications</h3>
  {{range .}}
  <article class="card">
    {{with .Image}}<img src="{{.}}" alt="">{{end}}
    <h4>{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h4>
    <p class="card-subtitle">{{.Organization}} <span class="period">{{.Date}}</span></p>
    <p>{{.Description}}</p>
  </article>
  {{end}}
  {{end}}
  {{with .Doc.Awards.Blogs}}
  <h3>Blog Posts</h3>
  {{range .}}
  <article class="card">
    {{with .Image}}<img src="{{.}}" alt="">{{end}}
    <h4><a href="{{.URL}}">{{.Title}}</a></h4>
    <p class="card-subtitle"><span class="period">{{.Date}}</span></p>
    <p>{{.Description}}</p>
  </article>
  {{end}}
  {{end}}
</section>
{{end}}

{{range .Custom}}
<section id="{{.Key}}" class="section custom-section">
  <h2 class="{{.Section.Size}}">{{.Section.Title}}</h2>
  {{range .Section.Content}}
  <div class="paragraph">{{rich .Text}}</div>
  {{end}}
  {{with .Section.Items}}
  <div class="project-grid">
    {{range .}}
    <article class="card">
      {{with .Image}}<img src="{{.}}" alt="">{{end}}
      <h3>{{.Title}}</h3>
      {{with .Date}}<p class="period">{{.}}</p>{{end}}
      <div>{{rich .Description}}</div>
    </article>
    {{end}}
  </div>
  {{end}}
</section>
{{end}}

<footer class="section footer">
  <p>{{.Doc.Hero.Title}}</p>
</footer>

</body>
</html>
`

// cssContent is the base stylesheet written alongside the exported page.
// Theme palettes are keyed off the theme-* body class; the custom theme
// reads its colors from the :root variables the renderer emits.
const cssContent = `:root {
  --background: 0 0% 100%;
  --foreground: 222 47% 11%;
  --primary: 217 91% 60%;
  --primary-foreground: 0 0% 100%;
  --secondary: 160 84% 39%;
  --secondary-foreground: 0 0% 100%;
  --accent: 160 84% 39%;
  --accent-foreground: 0 0% 100%;
  --card: 0 0% 98%;
  --border: 214 32% 91%;
  --margin: 1rem;
  --padding: 1rem;
}

.dark {
  --background: 222 47% 11%;
  --foreground: 210 40% 98%;
  --card: 222 47% 15%;
  --border: 217 33% 25%;
}

.theme-netflix { --primary: 357 92% 47%; --primary-foreground: 0 0% 100%; --secondary: 0 0% 8%; --secondary-foreground: 0 0% 100%; }
.theme-youtube { --primary: 0 100% 50%; --primary-foreground: 0 0% 100%; --secondary: 0 0% 6%; --secondary-foreground: 0 0% 100%; }
.theme-spotify { --primary: 141 73% 42%; --primary-foreground: 0 0% 0%; --secondary: 0 0% 7%; --secondary-foreground: 0 0% 100%; }
.theme-snapchat { --primary: 59 100% 50%; --primary-foreground: 0 0% 0%; --secondary: 0 0% 0%; --secondary-foreground: 0 0% 100%; }
.theme-steam { --primary: 207 54% 33%; --primary-foreground: 0 0% 100%; --secondary: 200 18% 15%; --secondary-foreground: 0 0% 100%; }
.theme-uber { --primary: 0 0% 0%; --primary-foreground: 0 0% 100%; --secondary: 0 0% 33%; --secondary-foreground: 0 0% 100%; }
.theme-tiktok { --primary: 349 100% 59%; --primary-foreground: 0 0% 100%; --secondary: 179 100% 47%; --secondary-foreground: 0 0% 0%; }
.theme-beach { --primary: 197 71% 52%; --primary-foreground: 0 0% 100%; --secondary: 43 96% 56%; --secondary-foreground: 0 0% 0%; }
.theme-mountain { --primary: 215 28% 33%; --primary-foreground: 0 0% 100%; --secondary: 25 30% 45%; --secondary-foreground: 0 0% 100%; }
.theme-rainforest { --primary: 142 72% 29%; --primary-foreground: 0 0% 100%; --secondary: 32 81% 29%; --secondary-foreground: 0 0% 100%; }

.font-inter { font-family: 'Inter', system-ui, sans-serif; }
.font-roboto { font-family: 'Roboto', system-ui, sans-serif; }
.font-poppins { font-family: 'Poppins', system-ui, sans-serif; }
.font-openSans { font-family: 'Open Sans', system-ui, sans-serif; }
.font-lato { font-family: 'Lato', system-ui, sans-serif; }

.text-sm { font-size: 14px; }
.text-base { font-size: 16px; }
.text-lg { font-size: 18px; }
.text-xl { font-size: 20px; }

.text-2xl { font-size: 1.5rem; }
.text-3xl { font-size: 1.875rem; }
.text-4xl { font-size: 2.25rem; }
.text-5xl { font-size: 3rem; }

* { box-sizing: border-box; }

body {
  margin: 0;
  background: hsl(var(--background));
  color: hsl(var(--foreground));
  line-height: 1.6;
}

a { color: hsl(var(--primary)); text-decoration: none; }
a:hover { text-decoration: underline; }

.section {
  max-width: 960px;
  margin: var(--margin) auto;
  padding: var(--padding);
}

.section h2 {
  border-bottom: 2px solid hsl(var(--primary));
  padding-bottom: 0.25rem;
}

.hero { text-align: center; }

.hero-image {
  width: 160px;
  height: 160px;
  border-radius: 50%;
  object-fit: cover;
  border: 3px solid hsl(var(--primary));
}

.hero-subtitle { color: hsl(var(--primary)); font-weight: 600; }

.social-links a, .project-links a {
  margin-right: 0.75rem;
  font-weight: 600;
}

.card {
  background: hsl(var(--card));
  border: 1px solid hsl(var(--border));
  border-radius: 8px;
  padding: var(--padding);
  margin-bottom: var(--margin);
}

.card img { max-width: 100%; border-radius: 4px; }

.card-subtitle { color: hsl(var(--foreground) / 0.7); }

.period {
  float: right;
  font-size: 0.85em;
  color: hsl(var(--foreground) / 0.6);
}

.project-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
  gap: var(--margin);
}

.skill-cards {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(200px, 1fr));
  gap: var(--margin);
}

.skill-card {
  background: hsl(var(--card));
  border: 1px solid hsl(var(--border));
  border-radius: 8px;
  padding: calc(var(--padding) / 2);
}

.tags { display: flex; flex-wrap: wrap; gap: 0.5rem; }

.tag {
  background: hsl(var(--secondary));
  color: hsl(var(--secondary-foreground));
  border-radius: 999px;
  padding: 0.15rem 0.75rem;
  font-size: 0.85em;
}

.contact-list { list-style: none; padding: 0; }

.map { width: 100%; height: 300px; border: 0; border-radius: 8px; }

.footer {
  text-align: center;
  color: hsl(var(--foreground) / 0.5);
  font-size: 0.85em;
}
`
