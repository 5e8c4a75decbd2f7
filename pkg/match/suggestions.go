package match

import (
	"strings"

	"github.com/artem13815/cvtailor/pkg/resume"
)

const (
	weakThreshold      = 70
	maxKeywordHints    = 5
	minSuggestionCount = 3
)

type hints struct {
	addKeywords string
	fillFields  string
	experience  string
	skills      string
	generic     []string
}

var suggestionText = map[resume.Language]hints{
	resume.LangRO: {
		addKeywords: "Adaugă aceste cuvinte cheie importante: ",
		fillFields:  "Completează câmpurile lipsă: ",
		experience:  "Îmbunătățește descrierile experienței de muncă cu mai multe detalii și realizări cuantificabile",
		skills:      "Adaugă mai multe abilități relevante pentru acest job",
		generic: []string{
			"Personalizează sumarul profesional pentru a reflecta cerințele specifice ale jobului",
			"Evidențiază realizările care se aliniază cu responsabilitățile din descrierea jobului",
			"Folosește terminologia specifică industriei în tot CV-ul",
		},
	},
	resume.LangEN: {
		addKeywords: "Add these important keywords: ",
		fillFields:  "Fill in the missing fields: ",
		experience:  "Improve work experience descriptions with more detail and quantifiable achievements",
		skills:      "Add more skills relevant to this job",
		generic: []string{
			"Tailor the professional summary to the specific requirements of the job",
			"Highlight achievements that align with the responsibilities in the job description",
			"Use industry-specific terminology throughout the CV",
		},
	},
	resume.LangIT: {
		addKeywords: "Aggiungi queste parole chiave importanti: ",
		fillFields:  "Completa i campi mancanti: ",
		experience:  "Migliora le descrizioni delle esperienze lavorative con più dettagli e risultati quantificabili",
		skills:      "Aggiungi più competenze rilevanti per questa posizione",
		generic: []string{
			"Personalizza il profilo professionale in base ai requisiti specifici della posizione",
			"Metti in evidenza i risultati in linea con le responsabilità descritte nell'annuncio",
			"Usa la terminologia specifica del settore in tutto il CV",
		},
	},
}

// Suggestions returns improvement hints for score in lang. Unknown languages
// fall back to Romanian.
func Suggestions(score Score, lang resume.Language) []string {
	h, ok := suggestionText[lang]
	if !ok {
		h = suggestionText[resume.DefaultLanguage]
	}
	d := score.Details

	out := []string{}
	if missing := d.KeywordMatch.Missing; len(missing) > 0 {
		if len(missing) > maxKeywordHints {
			missing = missing[:maxKeywordHints]
		}
		out = append(out, h.addKeywords+strings.Join(missing, ", "))
	}
	if len(d.Completeness.MissingFields) > 0 {
		out = append(out, h.fillFields+strings.Join(d.Completeness.MissingFields, ", "))
	}
	if d.WorkExperience.Score < weakThreshold {
		out = append(out, h.experience)
	}
	if d.Skills.Score < weakThreshold {
		out = append(out, h.skills)
	}
	if len(out) < minSuggestionCount {
		out = append(out, h.generic...)
	}
	return out
}
