package resume

// Clone returns a deep copy of r. The copy is normalized.
func (r Resume) Clone() Resume {
	out := r
	out.Recipients = cloneStrings(r.Recipients)
	out.Skills = cloneStrings(r.Skills)

	out.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
	for i, w := range r.WorkExperience {
		w.Bullets = cloneStrings(w.Bullets)
		out.WorkExperience[i] = w
	}
	out.AcademicHistory = append([]Education{}, r.AcademicHistory...)
	out.Certifications = append([]Certification{}, r.Certifications...)
	out.Languages = append([]SpokenLanguage{}, r.Languages...)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
