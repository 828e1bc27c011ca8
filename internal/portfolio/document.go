package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Document is the root portfolio document: the standard sections as a closed
// set of typed records plus an open map of custom sections. On the wire and
// in storage it is one flat JSON object keyed by section, the same layout
// the editable page persists.
type Document struct {
	Hero           HeroSection
	Introduction   IntroductionSection
	Education      EducationSection
	WorkExperience WorkExperienceSection
	Projects       ProjectsSection
	Skills         SkillsSection
	Contacts       ContactsSection
	Awards         AwardsSection

	// Custom holds viewer-added sections keyed by their section ID.
	Custom map[string]CustomSection
}

// MarshalJSON flattens the document into a single object with one key per
// section, custom sections alongside the standard ones.
func (d *Document) MarshalJSON() ([]byte, error) {
	sections := map[string]interface{}{
		KeyHero:           d.Hero,
		KeyIntroduction:   d.Introduction,
		KeyEducation:      d.Education,
		KeyWorkExperience: d.WorkExperience,
		KeyProjects:       d.Projects,
		KeySkills:         d.Skills,
		KeyContacts:       d.Contacts,
		KeyAwards:         d.Awards,
	}
	for key, section := range d.Custom {
		if IsStandardKey(key) {
			continue
		}
		sections[key] = section
	}
	return json.Marshal(sections)
}

// UnmarshalJSON parses the flat section object. Unknown keys become custom
// sections. Any malformed section fails the whole parse: a document is
// adopted in full or not at all.
func (d *Document) UnmarshalJSON(data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	parsed := Document{}
	for key, raw := range sections {
		if err := parsed.setSection(key, raw); err != nil {
			return err
		}
	}

	*d = parsed
	return nil
}

// decodeStrict unmarshals raw into v, rejecting values that are not records
// of the expected shape (arrays, strings, numbers).
func decodeStrict(key string, raw json.RawMessage, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("section %s: %w", key, err)
	}
	return nil
}

// setSection replaces the named section with the decoded value. The caller
// normalizes afterwards; prior state is untouched when decoding fails.
func (d *Document) setSection(key string, raw json.RawMessage) error {
	switch key {
	case KeyHero:
		var s HeroSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.Hero = s
	case KeyIntroduction:
		var s IntroductionSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.Introduction = s
	case KeyEducation:
		var s EducationSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.Education = s
	case KeyWorkExperience:
		var s WorkExperienceSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.WorkExperience = s
	case KeyProjects:
		var s ProjectsSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.Projects = s
	case KeySkills:
		var s SkillsSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.Skills = s
	case KeyContacts:
		var s ContactsSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.Contacts = s
	case KeyAwards:
		var s AwardsSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		d.Awards = s
	default:
		var s CustomSection
		if err := decodeStrict(key, raw, &s); err != nil {
			return err
		}
		if d.Custom == nil {
			d.Custom = make(map[string]CustomSection)
		}
		d.Custom[key] = s
	}
	return nil
}

// Normalize fills the required sub-collections of every standard section with
// empty lists so consumers never see a missing list. Callers may supply
// partial section objects; normalization makes the shape whole again.
func (d *Document) Normalize() {
	if d.Introduction.Content == nil {
		d.Introduction.Content = []Paragraph{}
	}
	if d.Education.Items == nil {
		d.Education.Items = []EducationItem{}
	}
	if d.WorkExperience.Items == nil {
		d.WorkExperience.Items = []Job{}
	}
	if d.Projects.Items == nil {
		d.Projects.Items = []Project{}
	}
	if d.Skills.Categories == nil {
		d.Skills.Categories = map[string][]Skill{}
	}
	if d.Awards.Awards == nil {
		d.Awards.Awards = []Award{}
	}
	if d.Awards.Certifications == nil {
		d.Awards.Certifications = []Certification{}
	}
	if d.Awards.Blogs == nil {
		d.Awards.Blogs = []BlogPost{}
	}
}

// SectionJSON returns the named section as JSON. ok is false when the key
// names neither a standard section nor an existing custom section.
func (d *Document) SectionJSON(key string) (json.RawMessage, bool) {
	var section interface{}
	switch key {
	case KeyHero:
		section = d.Hero
	case KeyIntroduction:
		section = d.Introduction
	case KeyEducation:
		section = d.Education
	case KeyWorkExperience:
		section = d.WorkExperience
	case KeyProjects:
		section = d.Projects
	case KeySkills:
		section = d.Skills
	case KeyContacts:
		section = d.Contacts
	case KeyAwards:
		section = d.Awards
	default:
		custom, ok := d.Custom[key]
		if !ok {
			return nil, false
		}
		section = custom
	}

	raw, err := json.Marshal(section)
	if err != nil {
		return nil, false
	}
	return raw, true
}

// CustomKeys returns the custom section keys in stable sorted order.
func (d *Document) CustomKeys() []string {
	keys := make([]string, 0, len(d.Custom))
	for key := range d.Custom {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SectionKeys returns every section key: the standard keys in display order
// followed by custom keys in sorted order.
func (d *Document) SectionKeys() []string {
	keys := make([]string, 0, len(StandardKeys)+len(d.Custom))
	keys = append(keys, StandardKeys...)
	keys = append(keys, d.CustomKeys()...)
	return keys
}
