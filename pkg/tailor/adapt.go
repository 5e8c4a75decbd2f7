package tailor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/artem13815/cvtailor/pkg/llm"
	"github.com/artem13815/cvtailor/pkg/resume"
)

const adaptSystemPrompt = "You are an ATS optimization and resume writing expert."

var languageLabel = map[resume.Language]string{
	resume.LangRO: "Romanian",
	resume.LangEN: "English",
	resume.LangIT: "Italian",
}

func (s *service) Adapt(ctx context.Context, r resume.Resume, opts AdaptOptions) resume.Resume {
	base := r.WithJob(resume.JobContext{
		JobTitle:       opts.JobTitle,
		JobDescription: opts.JobDescription,
		CompanyName:    opts.CompanyName,
	})
	base.Normalize()
	lang := language(opts.TargetLanguage, r.CVLanguage)

	out, ok := s.adaptWithModel(ctx, base, lang)
	if !ok {
		out = s.adaptHeuristic(base, lang)
	}

	out.ID = base.ID
	out.CreatedAt = base.CreatedAt
	out.CVLanguage = lang
	out.JobTitle = base.JobTitle
	out.JobDescription = base.JobDescription
	out.Company = base.Company
	out.UpdatedAt = s.now()
	return out
}

// adaptWithModel reports false whenever the model is not configured or its
// reply cannot be used.
func (s *service) adaptWithModel(ctx context.Context, base resume.Resume, lang resume.Language) (resume.Resume, bool) {
	if s.llm == nil {
		return resume.Resume{}, false
	}
	user, err := adaptPrompt(base, lang)
	if err != nil {
		s.log.WarnContext(ctx, "adapt prompt", "error", err)
		return resume.Resume{}, false
	}
	reply, err := s.ask(ctx, adaptSystemPrompt, user)
	if err != nil {
		s.log.WarnContext(ctx, "model adapt failed, using heuristic", "error", err)
		return resume.Resume{}, false
	}
	span, err := llm.ExtractJSONObject(reply)
	if err != nil {
		s.log.WarnContext(ctx, "model adapt reply unusable, using heuristic", "error", err)
		return resume.Resume{}, false
	}
	out, err := mergeReply(base, span)
	if err != nil {
		s.log.WarnContext(ctx, "model adapt reply unusable, using heuristic", "error", err)
		return resume.Resume{}, false
	}
	return out, true
}

func adaptPrompt(base resume.Resume, lang resume.Language) (string, error) {
	doc, err := json.Marshal(base)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{
		fmt.Sprintf("Transform the following resume to be targeted for the job below, in %s.", languageLabel[lang]),
		"--- Job ---",
		"Title: " + base.JobTitle,
		"Company: " + base.Company,
		"Description: " + base.JobDescription,
		"--- Directives ---",
		"- Incorporate the job keywords naturally into the summary, experience and skills.",
		"- Reorder work experience so the most relevant entries come first.",
		"- Quantify achievements where the resume gives enough detail.",
		"- Preserve name and contact data exactly.",
		"- Return ONLY JSON with the same keys as the input resume object.",
		"--- Resume JSON ---",
		string(doc),
		"--- End Resume JSON ---",
	}, "\n"), nil
}

// identityKeys are owned by the store and never taken from a model reply.
var identityKeys = map[string]struct{}{"id": {}, "createdAt": {}, "updatedAt": {}}

// mergeReply overlays the top-level keys of a model reply on base.
func mergeReply(base resume.Resume, span string) (resume.Resume, error) {
	var patch map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &patch); err != nil {
		return resume.Resume{}, fmt.Errorf("decode reply: %w", err)
	}
	doc, err := json.Marshal(base)
	if err != nil {
		return resume.Resume{}, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(doc, &merged); err != nil {
		return resume.Resume{}, err
	}
	for k, v := range patch {
		if _, ok := identityKeys[k]; ok {
			continue
		}
		merged[k] = v
	}
	doc, err = json.Marshal(merged)
	if err != nil {
		return resume.Resume{}, err
	}
	var out resume.Resume
	if err := json.Unmarshal(doc, &out); err != nil {
		return resume.Resume{}, fmt.Errorf("decode merged resume: %w", err)
	}
	out.Normalize()
	return out, nil
}
