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

// 求职领域的关键词
// 单个英文单词按分词匹配，避免 tax 命中 syntax 这种情况；
// 词组和中文按子串匹配
var (
	domainWords = map[string]struct{}{
		"resume":      {},
		"cv":          {},
		"interview":   {},
		"interviews":  {},
		"interviewer": {},
		"recruiter":   {},
		"recruiters":  {},
		"salary":      {},
		"offer":       {},
		"offers":      {},
		"negotiation": {},
		"negotiate":   {},
		"promotion":   {},
		"portfolio":   {},
		"career":      {},
		"hiring":      {},
		"onboarding":  {},
		"referral":    {},
		"equity":      {},
		"bonus":       {},
		"benefits":    {},
		"contract":    {},
		"internship":  {},
		"linkedin":    {},
		"skills":      {},
		"skill":       {},
		"job":         {},
		"jobs":        {},
		"role":        {},
		"manager":     {},
		"layoff":      {},
		"severance":   {},
		"tax":         {},
		"pension":     {},
		"401k":        {},
	}

	domainPhrases = []string{
		"cover letter",
		"job description",
		"base salary",
		"notice period",
		"career path",
		"performance review",
		"简历",
		"面试",
		"薪资",
		"薪水",
		"跳槽",
		"晋升",
		"绩效",
		"社保",
		"公积金",
		"年终奖",
		"离职",
		"入职",
		"内推",
		"谈薪",
	}
)
