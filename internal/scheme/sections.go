package scheme

import (
	"regexp"
	"strings"
)

const (
	reasoningHint     = "请查看上方AI建议中的搭配理由部分"
	colorAnalysisHint = "请查看上方AI建议中的色彩搭配分析部分"
)

type section struct {
	heading  *regexp.Regexp
	inline   *regexp.Regexp
	keywords []string
	hint     string
}

var (
	reasoningSection = section{
		heading:  regexp.MustCompile(`##\s*二[、.]\s*搭配理由和目的[^\n]*\n`),
		inline:   regexp.MustCompile(`搭配理由[：:][ \t]*([^\n]+)`),
		keywords: []string{"理由", "为什么"},
		hint:     reasoningHint,
	}
	colorAnalysisSection = section{
		heading:  regexp.MustCompile(`##\s*三[、.]\s*全身色彩搭配分析[^\n]*\n`),
		inline:   regexp.MustCompile(`全身色彩搭配[：:][ \t]*([^\n]+)`),
		keywords: []string{"色彩"},
		hint:     colorAnalysisHint,
	}
)

// Reasoning returns the "why this outfit" section of a completion, a hint
// pointing at it, or "" when the text has nothing of the kind.
func Reasoning(text string) string {
	return reasoningSection.extract(text)
}

// ColorAnalysis returns the whole-body color analysis section of a
// completion, a hint pointing at it, or "".
func ColorAnalysis(text string) string {
	return colorAnalysisSection.extract(text)
}

func (sec section) extract(text string) string {
	if loc := sec.heading.FindStringIndex(text); loc != nil {
		body := text[loc[1]:]
		if i := strings.Index(body, "\n##"); i >= 0 {
			body = body[:i]
		}
		if body = strings.TrimSpace(body); body != "" {
			return body
		}
	}
	if m := sec.inline.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	for _, k := range sec.keywords {
		if strings.Contains(text, k) {
			return sec.hint
		}
	}
	return ""
}
