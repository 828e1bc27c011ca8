// Package portfolio holds the portfolio document model and the edit session
// store that owns it. Every visible section of the site reads from the single
// document managed here; every edit flows back through whole-section
// replacement and is written through to the snapshot store.
package portfolio

// Section keys for the standard sections. Any other key names a custom,
// viewer-added section.
const (
	KeyHero           = "title"
	KeyIntroduction   = "introduction"
	KeyEducation      = "education"
	KeyWorkExperience = "workExperience"
	KeyProjects       = "projects"
	KeySkills         = "skills"
	KeyContacts       = "contacts"
	KeyAwards         = "awardsCertifications"
)

// StandardKeys lists the standard section keys in display order.
var StandardKeys = []string{
	KeyHero,
	KeyIntroduction,
	KeyEducation,
	KeyWorkExperience,
	KeyProjects,
	KeySkills,
	KeyContacts,
	KeyAwards,
}

// IsStandardKey reports whether key names a standard section.
func IsStandardKey(key string) bool {
	for _, k := range StandardKeys {
		if k == key {
			return true
		}
	}
	return false
}

// SocialLinks holds the hero section's social profile URLs.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// HeroSection is the page header: name, tagline, portrait, social links.
type HeroSection struct {
	IsRequired  bool         `json:"isRequired"`
	Title       string       `json:"title"`
	Size        string       `json:"size"`
	Image       string       `json:"image"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Description string       `json:"description,omitempty"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
}

// Paragraph is one rich-text fragment in an ordered list. The paragraph
// number is display numbering and stays contiguous from 1.
type Paragraph struct {
	Paragraph int    `json:"paragraph"`
	Text      string `json:"text"`
}

// EducationSummary is the short education entry shown in the about section.
type EducationSummary struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// IntroductionSection is the about section: ordered paragraphs plus optional
// journey text and a summary education list.
type IntroductionSection struct {
	IsRequired bool               `json:"isRequired"`
	Title      string             `json:"title"`
	Size       string             `json:"size"`
	Content    []Paragraph        `json:"content"`
	Journey    string             `json:"journey,omitempty"`
	Education  []EducationSummary `json:"education,omitempty"`
}

// TimePeriod is a year range. End is nil for ongoing entries.
type TimePeriod struct {
	Start int  `json:"start"`
	End   *int `json:"end"`
}

// EducationItem is one full education entry.
type EducationItem struct {
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	TimePeriod   TimePeriod `json:"timePeriod"`
	GPA          *float64   `json:"gpa,omitempty"`
	Activities   []string   `json:"activities"`
	Achievements []string   `json:"achievements"`
}

// EducationSection lists full education entries.
type EducationSection struct {
	IsRequired bool            `json:"isRequired"`
	Title      string          `json:"title"`
	Size       string          `json:"size"`
	Items      []EducationItem `json:"items"`
}

// Job is one work history entry.
type Job struct {
	Company    string     `json:"company"`
	Role       string     `json:"role"`
	TimePeriod TimePeriod `json:"timePeriod"`
	Location   string     `json:"location"`
	Points     []string   `json:"points"`
}

// SkillCard is a titled skill group shown alongside work experience.
type SkillCard struct {
	Title string   `json:"title"`
	Icon  string   `json:"icon"`
	Items []string `json:"items"`
}

// WorkExperienceSection is the job list plus optional skill cards.
type WorkExperienceSection struct {
	IsRequired bool        `json:"isRequired"`
	Title      string      `json:"title"`
	Size       string      `json:"size"`
	Items      []Job       `json:"items"`
	Skills     []SkillCard `json:"skills,omitempty"`
}

// ProjectLinks holds a project's repository and demo URLs.
type ProjectLinks struct {
	GitHub string `json:"github"`
	Demo   string `json:"demo"`
}

// Project is one project card.
type Project struct {
	Title        string       `json:"title"`
	Photo        string       `json:"photo"`
	Links        ProjectLinks `json:"links"`
	Description  string       `json:"description"`
	Technologies []string     `json:"technologies"`
}

// ProjectsSection lists project cards.
type ProjectsSection struct {
	IsRequired bool      `json:"isRequired"`
	Title      string    `json:"title"`
	Size       string    `json:"size"`
	Items      []Project `json:"items"`
}

// Skill is one named skill. Icon is nil when no icon is chosen.
type Skill struct {
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

// SkillsSection maps category name to an ordered skill list. Categories with
// no skills are pruned rather than kept as empty keys.
type SkillsSection struct {
	IsRequired bool               `json:"isRequired"`
	Title      string             `json:"title"`
	Size       string             `json:"size"`
	Categories map[string][]Skill `json:"categories"`
}

// ContactDetails holds the contact section's fields.
type ContactDetails struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
	Location string `json:"location,omitempty"`
	MapURL   string `json:"mapUrl,omitempty"`
}

// ContactsSection is the contact section.
type ContactsSection struct {
	IsRequired bool           `json:"isRequired"`
	Title      string         `json:"title"`
	Size       string         `json:"size"`
	Details    ContactDetails `json:"details"`
}

// Award is one award entry.
type Award struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
}

// Certification is one certification entry.
type Certification struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	URL          string `json:"url,omitempty"`
}

// BlogPost is one blog entry.
type BlogPost struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url"`
}

// AwardsSection holds three independent lists. All three are always present
// as lists, never nil; consumers must not special-case a missing list.
type AwardsSection struct {
	Title          string          `json:"title"`
	Size           string          `json:"size"`
	Awards         []Award         `json:"awards"`
	Certifications []Certification `json:"certifications"`
	Blogs          []BlogPost      `json:"blogs"`
}

// CustomItem is one card in a viewer-added section.
type CustomItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CustomSection is the open variant: a viewer-added section carrying either
// rich-text content, card items, both, or neither. The generic renderer
// tolerates every combination.
type CustomSection struct {
	IsRequired bool         `json:"isRequired"`
	Title      string       `json:"title"`
	Size       string       `json:"size"`
	Content    []Paragraph  `json:"content,omitempty"`
	Items      []CustomItem `json:"items,omitempty"`
}
