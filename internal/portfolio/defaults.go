package portfolio

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string    { return &v }

// Default returns the built-in document adopted when the snapshot store is
// empty or holds an unparseable snapshot.
func Default() *Document {
	doc := &Document{
		Hero: HeroSection{
			IsRequired:  true,
			Title:       "Gokul G.K",
			Size:        "text-4xl",
			Image:       "/placeholder.svg?height=400&width=400",
			Subtitle:    "Full Stack Developer & Project Manager",
			Description: "I build exceptional digital experiences that are fast, accessible, and visually appealing. Currently focused on building responsive applications.",
			SocialLinks: &SocialLinks{
				GitHub:   "https://github.com",
				LinkedIn: "https://linkedin.com",
				Twitter:  "https://twitter.com",
			},
		},
		Introduction: IntroductionSection{
			IsRequired: true,
			Title:      "About Me",
			Size:       "text-2xl",
			Content: []Paragraph{
				{Paragraph: 1, Text: "<p>Hi, I'm Gokul G.K, a passionate Full Stack Developer Product Manager with experience in React, JavaScript, and Tailwind CSS. I enjoy building responsive and user-friendly web applications.</p>"},
				{Paragraph: 2, Text: "<p>I have a strong background in frontend development and a keen interest in modern web technologies.</p>"},
			},
			Journey: "I started my journey as a self-taught developer, learning HTML, CSS, and JavaScript. Over the years, I've expanded my skills to include modern frameworks like React, Next.js, and various backend technologies. I'm passionate about creating accessible, performant, and beautiful web applications.",
			Education: []EducationSummary{
				{Degree: "M.S. in IT Management", Institution: "University of Technology", Period: "2018-2022"},
				{Degree: "B.S. in Computer Science", Institution: "University of Technology", Period: "2018-2022"},
				{Degree: "Full Stack Web Development Bootcamp", Institution: "Tech Bootcamp", Period: "2022"},
				{Degree: "UI/UX Design Certification", Institution: "Design Institute", Period: "2023"},
			},
		},
		Education: EducationSection{
			IsRequired: true,
			Title:      "Education",
			Size:       "text-2xl",
			Items: []EducationItem{
				{
					Institution:  "University of Technology",
					Degree:       "B.S. Computer Science",
					TimePeriod:   TimePeriod{Start: 2018, End: intPtr(2022)},
					GPA:          floatPtr(3.8),
					Activities:   []string{"Coding Club", "Robotics Club", "Open Source Projects"},
					Achievements: []string{"Dean's List 2020", "Hackathon Winner 2021", "Best Thesis Award 2022"},
				},
				{
					Institution:  "Tech Bootcamp",
					Degree:       "Full Stack Web Development",
					TimePeriod:   TimePeriod{Start: 2022, End: intPtr(2022)},
					Activities:   []string{"Team Projects", "Hackathons"},
					Achievements: []string{"Best Project Award"},
				},
			},
		},
		WorkExperience: WorkExperienceSection{
			IsRequired: true,
			Title:      "Work Experience",
			Size:       "text-2xl",
			Items: []Job{
				{
					Company:    "TechCorp Inc.",
					Role:       "Senior Frontend Developer",
					TimePeriod: TimePeriod{Start: 2022},
					Location:   "San Francisco, CA",
					Points: []string{
						"Led the frontend development team in building responsive web applications",
						"Implemented modern frontend practices and improved performance by 40%",
						"Collaborated with designers to implement responsive UI components",
					},
				},
				{
					Company:    "WebSolutions",
					Role:       "Full Stack Developer",
					TimePeriod: TimePeriod{Start: 2020, End: intPtr(2022)},
					Location:   "New York, NY",
					Points: []string{
						"Developed and maintained full-stack applications using React, Node.js, and MongoDB",
						"Collaborated with designers to implement responsive UI components",
						"Participated in code reviews and mentored junior developers",
					},
				},
			},
			Skills: []SkillCard{
				{Title: "Frontend Development", Icon: "code", Items: []string{"React", "Next.js", "TypeScript", "Tailwind CSS", "HTML5", "CSS3", "JavaScript"}},
				{Title: "Backend Development", Icon: "briefcase", Items: []string{"Node.js", "Express", "MongoDB", "PostgreSQL", "Firebase", "RESTful APIs", "GraphQL"}},
				{Title: "UI/UX Design", Icon: "lightbulb", Items: []string{"Figma", "Adobe XD", "Responsive Design", "Wireframing", "Prototyping"}},
			},
		},
		Projects: ProjectsSection{
			IsRequired: true,
			Title:      "Projects",
			Size:       "text-2xl",
			Items: []Project{
				{
					Title:        "E-commerce Platform",
					Photo:        "/placeholder.svg?height=300&width=500",
					Links:        ProjectLinks{GitHub: "https://github.com", Demo: "https://example.com"},
					Description:  "A full-stack e-commerce platform built with Next.js, Stripe, and a headless CMS.",
					Technologies: []string{"Next.js", "Stripe", "Tailwind CSS", "Headless CMS"},
				},
				{
					Title:        "Task Management App",
					Photo:        "/placeholder.svg?height=300&width=500",
					Links:        ProjectLinks{GitHub: "https://github.com", Demo: "https://example.com"},
					Description:  "A collaborative task management application with real-time updates and team features.",
					Technologies: []string{"React", "Firebase", "Material UI", "Real-time"},
				},
			},
		},
		Skills: SkillsSection{
			IsRequired: true,
			Title:      "Skills",
			Size:       "text-2xl",
			Categories: map[string][]Skill{
				"frontend": {
					{Name: "React", Icon: strPtr("react")},
					{Name: "JavaScript", Icon: strPtr("javascript")},
					{Name: "Tailwind CSS", Icon: strPtr("tailwindcss")},
					{Name: "HTML5", Icon: strPtr("html5")},
					{Name: "CSS3", Icon: strPtr("css3")},
				},
				"backend": {
					{Name: "Node.js", Icon: strPtr("nodedotjs")},
					{Name: "Express", Icon: strPtr("express")},
					{Name: "MongoDB", Icon: strPtr("mongodb")},
				},
				"design": {
					{Name: "Figma", Icon: strPtr("figma")},
					{Name: "Adobe XD", Icon: strPtr("adobexd")},
					{Name: "UI/UX Design"},
				},
			},
		},
		Contacts: ContactsSection{
			IsRequired: true,
			Title:      "Contact Me",
			Size:       "text-2xl",
			Details: ContactDetails{
				Email:    "john.doe@example.com",
				Phone:    "+1 234 567 890",
				LinkedIn: "https://linkedin.com",
				GitHub:   "https://github.com",
				Twitter:  "https://twitter.com",
				Location: "San Francisco, California",
				MapURL:   "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d100939.98555098464!2d-122.50764017948551!3d37.75781499657633!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x80859a6d00690021%3A0x4a501367f076adff!2sSan%20Francisco%2C%20CA!5e0!3m2!1sen!2sus!4v1620756370045!5m2!1sen!2sus",
			},
		},
		Awards: AwardsSection{
			Title: "Awards, Certifications & Blogs",
			Size:  "text-2xl",
			Awards: []Award{
				{
					Title:        "Best Developer Award",
					Organization: "Tech Conference 2023",
					Date:         "2023",
					Description:  "Recognized for outstanding contributions to open-source development and innovative solutions.",
					Image:        "/placeholder.svg?height=200&width=300",
				},
			},
			Certifications: []Certification{
				{
					Title:        "AWS Certified Solutions Architect",
					Organization: "Amazon Web Services",
					Date:         "2022",
					Description:  "Professional certification validating expertise in designing distributed systems on AWS.",
					Image:        "/placeholder.svg?height=200&width=300",
					URL:          "https://example.com/certificate",
				},
			},
			Blogs: []BlogPost{
				{
					Title:       "Building Scalable Web Applications",
					Date:        "January 2023",
					Description: "A comprehensive guide to building web applications that can handle millions of users.",
					Image:       "/placeholder.svg?height=200&width=300",
					URL:         "https://example.com/blog",
				},
			},
		},
	}

	doc.Normalize()
	return doc
}
