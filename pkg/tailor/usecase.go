package tailor

import (
	"context"
	"log/slog"
	"time"

	"github.com/artem13815/cvtailor/pkg/llm"
	"github.com/artem13815/cvtailor/pkg/nlp"
	"github.com/artem13815/cvtailor/pkg/resume"
)

// DefaultTimeout bounds one external generation call.
const DefaultTimeout = 15 * time.Second

// AdaptOptions describes the job a résumé is adapted to. Empty job fields keep
// the résumé's current values.
type AdaptOptions struct {
	TargetLanguage resume.Language `json:"targetLanguage"`
	JobTitle       string          `json:"jobTitle"`
	JobDescription string          `json:"jobDescription"`
	CompanyName    string          `json:"companyName"`
}

type LetterOptions struct {
	TargetLanguage resume.Language `json:"targetLanguage"`
	RecipientName  string          `json:"recipientName"`
	CompanyName    string          `json:"companyName"`
	JobTitle       string          `json:"jobTitle"`
}

// UseCase адаптирует резюме под вакансию и пишет сопроводительные письма.
// Ни один метод не возвращает ошибку: при недоступной модели работает эвристика.
type UseCase interface {
	Adapt(ctx context.Context, r resume.Resume, opts AdaptOptions) resume.Resume
	Letter(ctx context.Context, r resume.Resume, opts LetterOptions) string
}

type Config struct {
	// Timeout of one model call; DefaultTimeout when zero.
	Timeout   time.Duration
	Now       func() time.Time
	Extractor *nlp.Extractor
	Logger    *slog.Logger
}

type service struct {
	llm     llm.ChatModel
	timeout time.Duration
	now     func() time.Time
	ex      *nlp.Extractor
	log     *slog.Logger
}

// NewService builds the adapter. model may be nil, in which case only the
// heuristic path runs.
func NewService(model llm.ChatModel, cfg Config) UseCase {
	s := &service{
		llm:     model,
		timeout: cfg.Timeout,
		now:     cfg.Now,
		ex:      cfg.Extractor,
		log:     cfg.Logger,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.ex == nil {
		s.ex = nlp.Default()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("component", "tailor")
	return s
}

// language picks the output language: the requested one, else the résumé's,
// else the default.
func language(target, current resume.Language) resume.Language {
	if target.Valid() {
		return target
	}
	if current.Valid() {
		return current
	}
	return resume.DefaultLanguage
}

func (s *service) ask(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.llm.Ask(ctx, system, user)
}
