package portfolio

// Deep copies. Every mutation works against a copy and replaces wholesale;
// no consumer ever holds a shared reference into the committed document.

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyParagraphs(in []Paragraph) []Paragraph {
	if in == nil {
		return nil
	}
	out := make([]Paragraph, len(in))
	copy(out, in)
	return out
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of the time period.
func (t TimePeriod) Clone() TimePeriod {
	return TimePeriod{Start: t.Start, End: copyIntPtr(t.End)}
}

// Clone returns a deep copy of the hero section.
func (s HeroSection) Clone() HeroSection {
	out := s
	if s.SocialLinks != nil {
		links := *s.SocialLinks
		out.SocialLinks = &links
	}
	return out
}

// Clone returns a deep copy of the introduction section.
func (s IntroductionSection) Clone() IntroductionSection {
	out := s
	out.Content = copyParagraphs(s.Content)
	if s.Education != nil {
		out.Education = make([]EducationSummary, len(s.Education))
		copy(out.Education, s.Education)
	}
	return out
}

// Clone returns a deep copy of the education section.
func (s EducationSection) Clone() EducationSection {
	out := s
	if s.Items != nil {
		out.Items = make([]EducationItem, len(s.Items))
		for i, item := range s.Items {
			item.TimePeriod = item.TimePeriod.Clone()
			if item.GPA != nil {
				gpa := *item.GPA
				item.GPA = &gpa
			}
			item.Activities = copyStrings(item.Activities)
			item.Achievements = copyStrings(item.Achievements)
			out.Items[i] = item
		}
	}
	return out
}

// Clone returns a deep copy of the work experience section.
func (s WorkExperienceSection) Clone() WorkExperienceSection {
	out := s
	if s.Items != nil {
		out.Items = make([]Job, len(s.Items))
		for i, job := range s.Items {
			job.TimePeriod = job.TimePeriod.Clone()
			job.Points = copyStrings(job.Points)
			out.Items[i] = job
		}
	}
	if s.Skills != nil {
		out.Skills = make([]SkillCard, len(s.Skills))
		for i, card := range s.Skills {
			card.Items = copyStrings(card.Items)
			out.Skills[i] = card
		}
	}
	return out
}

// Clone returns a deep copy of the projects section.
func (s ProjectsSection) Clone() ProjectsSection {
	out := s
	if s.Items != nil {
		out.Items = make([]Project, len(s.Items))
		for i, p := range s.Items {
			p.Technologies = copyStrings(p.Technologies)
			out.Items[i] = p
		}
	}
	return out
}

// Clone returns a deep copy of the skills section.
func (s SkillsSection) Clone() SkillsSection {
	out := s
	if s.Categories != nil {
		out.Categories = make(map[string][]Skill, len(s.Categories))
		for name, skills := range s.Categories {
			copied := make([]Skill, len(skills))
			for i, skill := range skills {
				if skill.Icon != nil {
					icon := *skill.Icon
					skill.Icon = &icon
				}
				copied[i] = skill
			}
			out.Categories[name] = copied
		}
	}
	return out
}

// Clone returns a deep copy of the contacts section.
func (s ContactsSection) Clone() ContactsSection { return s }

// Clone returns a deep copy of the awards section.
func (s AwardsSection) Clone() AwardsSection {
	out := s
	if s.Awards != nil {
		out.Awards = make([]Award, len(s.Awards))
		copy(out.Awards, s.Awards)
	}
	if s.Certifications != nil {
		out.Certifications = make([]Certification, len(s.Certifications))
		copy(out.Certifications, s.Certifications)
	}
	if s.Blogs != nil {
		out.Blogs = make([]BlogPost, len(s.Blogs))
		copy(out.Blogs, s.Blogs)
	}
	return out
}

// Clone returns a deep copy of a custom section.
func (s CustomSection) Clone() CustomSection {
	out := s
	out.Content = copyParagraphs(s.Content)
	if s.Items != nil {
		out.Items = make([]CustomItem, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}

// Clone returns a deep copy of the whole document.
func (d *Document) Clone() *Document {
	out := &Document{
		Hero:           d.Hero.Clone(),
		Introduction:   d.Introduction.Clone(),
		Education:      d.Education.Clone(),
		WorkExperience: d.WorkExperience.Clone(),
		Projects:       d.Projects.Clone(),
		Skills:         d.Skills.Clone(),
		Contacts:       d.Contacts,
		Awards:         d.Awards.Clone(),
	}
	if d.Custom != nil {
		out.Custom = make(map[string]CustomSection, len(d.Custom))
		for key, section := range d.Custom {
			out.Custom[key] = section.Clone()
		}
	}
	return out
}
