// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aqs

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
)

var (
	bulletPrefixes = []string{"- ", "* ", "• ", "+ "}
	exampleCues    = []string{"for example", "for instance", "e.g.", "例如", "比如", "举个例子"}
	// 12 * 3000 = 36000 这种演算过程
	numericWalkthrough = regexp.MustCompile(`\d+(\.\d+)?\s*[x×*/+\-]\s*\d+(\.\d+)?\s*=`)
	ordinalLine        = regexp.MustCompile(`^\s*\d{1,2}[.)、]\s*\S`)
	stepCue            = regexp.MustCompile(`(?i)\bstep\s*\d+|第[一二三四五六七八九十\d]+步`)
)

// extractContent 纯文本层面的分析，不做任何语义理解
func (s *Scorer) extractContent(body string) domain.ContentSignals {
	rules := s.cfg.Content
	text := strings.TrimSpace(strings.ReplaceAll(body, "\r\n", "\n"))
	lines := strings.Split(text, "\n")
	lower := strings.ToLower(text)

	res := domain.ContentSignals{
		CharCount:     utf8.RuneCountInString(text),
		WordCount:     len(strings.Fields(text)),
		HasBullets:    hasBullets(lines),
		HasParagraphs: paragraphCount(lines) >= 2,
		HasExample:    hasExample(lower),
		HasSteps:      hasSteps(lines, text),
	}
	if res.WordCount > 0 {
		res.DomainKeywordDensity = float64(domainKeywordHits(lower)) / float64(res.WordCount)
	}
	res.HasDomainKeywords = res.DomainKeywordDensity >= rules.KeywordFloor
	res.IsGeneric = res.CharCount < rules.GenericMinChars &&
		!res.HasBullets && !res.HasParagraphs &&
		!res.HasExample && !res.HasSteps && !res.HasDomainKeywords
	return res
}

func (s *Scorer) contentScore(sig domain.ContentSignals) (float64, domain.ContentBreakdown) {
	rules := s.cfg.Content
	var bd domain.ContentBreakdown
	chars := math.Min(float64(sig.CharCount), float64(rules.LengthCap))
	bd.LengthScore = chars / float64(rules.LengthCap) * rules.LengthMax
	if sig.HasBullets {
		bd.StructureBonus += rules.BulletBonus
	}
	if sig.HasParagraphs {
		bd.StructureBonus += rules.ParagraphBonus
	}
	if sig.HasExample {
		bd.ExampleBonus = rules.ExampleBonus
	}
	if sig.HasSteps {
		bd.StepsBonus = rules.StepsBonus
	}
	if sig.HasDomainKeywords {
		ratio := math.Min(1, sig.DomainKeywordDensity/rules.KeywordSaturation)
		bd.DomainKeywordBonus = rules.DomainKeywordMax * ratio
	}
	if sig.IsGeneric {
		bd.GenericPenalty = rules.GenericPenalty
	}
	score := bd.LengthScore + bd.StructureBonus + bd.ExampleBonus +
		bd.StepsBonus + bd.DomainKeywordBonus - bd.GenericPenalty
	return clamp(score, 0, 100), bd
}

func hasBullets(lines []string) bool {
	for _, line := range lines {
		l := strings.TrimLeft(line, " \t")
		for _, p := range bulletPrefixes {
			if strings.HasPrefix(l, p) {
				return true
			}
		}
	}
	return false
}

// paragraphCount 以空行分隔的非空段落数
func paragraphCount(lines []string) int {
	cnt := 0
	inBlock := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			inBlock = false
			continue
		}
		if !inBlock {
			cnt++
			inBlock = true
		}
	}
	return cnt
}

func hasExample(lower string) bool {
	for _, cue := range exampleCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return numericWalkthrough.MatchString(lower)
}

func hasSteps(lines []string, text string) bool {
	ordinals := 0
	for _, line := range lines {
		if ordinalLine.MatchString(line) {
			ordinals++
		}
	}
	if ordinals >= 2 {
		return true
	}
	return len(stepCue.FindAllStringIndex(text, -1)) >= 2
}

func domainKeywordHits(lower string) int {
	hits := 0
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if _, ok := domainWords[w]; ok {
			hits++
		}
	}
	for _, p := range domainPhrases {
		hits += strings.Count(lower, p)
	}
	return hits
}
