package tailor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/artem13815/cvtailor/pkg/resume"
)

const letterSkillCount = 5

type letterTemplate struct {
	greetingNamed string
	greeting      string
	defaultRole   string
	defaultComp   string
	defaultImpact string
	body          string
	closing       string
	promptLabel   string
}

// body placeholders: name, role, company, skills, impact.
var letterTemplates = map[resume.Language]letterTemplate{
	resume.LangRO: {
		greetingNamed: "Stimate %s,",
		greeting:      "Bună ziua,",
		defaultRole:   "rolul menționat",
		defaultComp:   "compania dvs",
		defaultImpact: "impact măsurabil",
		body: "Sunt %s și doresc să aplic pentru poziția %s la %s. Experiența mea include %s, " +
			"iar în rolurile anterioare am livrat rezultate prin %s. " +
			"Consider că abilitățile mele se potrivesc cerințelor și pot contribui rapid.",
		closing:     "Vă mulțumesc pentru timpul acordat.\n\nCu stimă,",
		promptLabel: "Română",
	},
	resume.LangEN: {
		greetingNamed: "Dear %s,",
		greeting:      "Hello,",
		defaultRole:   "the advertised role",
		defaultComp:   "your company",
		defaultImpact: "measurable outcomes",
		body: "My name is %s and I am applying for the %s role at %s. My background includes %s, " +
			"and in prior roles I delivered impact through %s. " +
			"I believe my skills match the requirements and I can contribute quickly.",
		closing:     "Thank you for your time.\n\nBest regards,",
		promptLabel: "English",
	},
	resume.LangIT: {
		greetingNamed: "Gentile %s,",
		greeting:      "Buongiorno,",
		defaultRole:   "il ruolo indicato",
		defaultComp:   "la vostra azienda",
		defaultImpact: "risultati misurabili",
		body: "Mi chiamo %s e vorrei candidarmi per la posizione di %s presso %s. La mia esperienza include %s " +
			"e in ruoli precedenti ho ottenuto risultati tramite %s. " +
			"Ritengo che le mie competenze siano allineate ai requisiti.",
		closing:     "Grazie per l'attenzione.\n\nCordiali saluti,",
		promptLabel: "Italiano",
	},
}

func (s *service) Letter(ctx context.Context, r resume.Resume, opts LetterOptions) string {
	r = r.Clone()
	lang := language(opts.TargetLanguage, r.CVLanguage)
	fallback := HeuristicLetter(r, lang, opts)

	if s.llm == nil {
		return fallback
	}
	prompt, err := letterPrompt(r, lang, opts)
	if err != nil {
		s.log.WarnContext(ctx, "letter prompt", "error", err)
		return fallback
	}
	reply, err := s.ask(ctx, "", prompt)
	if err != nil {
		s.log.WarnContext(ctx, "model letter failed, using template", "error", err)
		return fallback
	}
	if reply = strings.TrimSpace(reply); reply == "" {
		s.log.WarnContext(ctx, "model letter empty, using template")
		return fallback
	}
	return reply
}

// HeuristicLetter fills the fixed template of lang.
func HeuristicLetter(r resume.Resume, lang resume.Language, opts LetterOptions) string {
	tpl, ok := letterTemplates[lang]
	if !ok {
		tpl = letterTemplates[resume.DefaultLanguage]
	}

	role := firstNonEmpty(opts.JobTitle, r.JobTitle, r.Role, tpl.defaultRole)
	company := firstNonEmpty(opts.CompanyName, r.Company, tpl.defaultComp)

	skills := r.Skills
	if len(skills) > letterSkillCount {
		skills = skills[:letterSkillCount]
	}
	impact := tpl.defaultImpact
	if len(r.WorkExperience) > 0 && strings.TrimSpace(r.WorkExperience[0].Description) != "" {
		impact = r.WorkExperience[0].Description
	}

	greeting := tpl.greeting
	if name := strings.TrimSpace(opts.RecipientName); name != "" {
		greeting = fmt.Sprintf(tpl.greetingNamed, name)
	}

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, tpl.body, r.Name, role, company, strings.Join(skills, ", "), impact)
	b.WriteString("\n\n")
	b.WriteString(tpl.closing)
	b.WriteString("\n")
	b.WriteString(r.Name)
	return b.String()
}

func letterPrompt(r resume.Resume, lang resume.Language, opts LetterOptions) (string, error) {
	doc, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	label := letterTemplates[lang].promptLabel
	return strings.Join([]string{
		fmt.Sprintf("Write a concise, compelling cover letter in %s.", label),
		"Use the resume data and target job details below. 180-280 words.",
		"Tone: professional, confident, specific to the role.",
		"--- Resume JSON ---",
		string(doc),
		"--- Job ---",
		"Company: " + firstNonEmpty(opts.CompanyName, r.Company),
		"Title: " + firstNonEmpty(opts.JobTitle, r.JobTitle),
		"Recipient: " + opts.RecipientName,
	}, "\n"), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
