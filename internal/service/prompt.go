package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"momgyeot-ai/internal/rag"
)

const basePrompt = `당신은 '맘곁' 육아 컴패니언 AI입니다.

## 역할
- 모유수유, 임신, 출산, 육아 전문 상담
- 공감적이고 따뜻한 태도
- 과학적 근거 기반 정보

## 응답 스타일
- 친근하고 따뜻한 말투 (반말/존댓말 혼용 가능)
- 핵심 정보 먼저, 200-300자 내외
- 이모지 적절히 사용 💕
- 심각한 증상은 전문가 상담 권유

## 주의사항
- 의료 진단 금지
- 불확실한 정보 제공 금지
- 응급상황은 즉시 병원 안내`

const (
	noContext = "관련 정보 없음"
	// NoAnswer is returned when neither generation nor retrieval produced anything.
	NoAnswer = "죄송해요, 관련 정보를 찾지 못했어요. 다른 방식으로 질문해 주시거나, 전문가 상담을 이용해 보세요!"
)

// BuildSystemPrompt appends the persona descriptor and the caller's profile to the base prompt.
func BuildSystemPrompt(personaPrompt string, userInfo json.RawMessage) string {
	var b strings.Builder
	b.WriteString(basePrompt)
	if personaPrompt != "" {
		b.WriteString("\n\n")
		b.WriteString(personaPrompt)
	}
	if info := compactUserInfo(userInfo); info != "" {
		b.WriteString("\n\n## 사용자 정보\n")
		b.WriteString(info)
	}
	return b.String()
}

// compactUserInfo returns userInfo as compact JSON, or "" for empty and falsy values.
func compactUserInfo(userInfo json.RawMessage) string {
	trimmed := bytes.TrimSpace(userInfo)
	switch string(trimmed) {
	case "", "null", "false", "0", `""`:
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return ""
	}
	return buf.String()
}

// BuildUserMessage numbers records as reference material ahead of the question.
func BuildUserMessage(query string, records []rag.ScoredRecord) string {
	blocks := make([]string, 0, len(records))
	for i, r := range records {
		blocks = append(blocks, fmt.Sprintf("[%d] %s\n%s", i+1, r.Title, r.Content))
	}
	context := strings.Join(blocks, "\n\n")
	if context == "" {
		context = noContext
	}
	return fmt.Sprintf("참고 정보:\n%s\n\n질문: %s", context, query)
}

// FallbackAnswer formats the best record as the answer, or returns NoAnswer.
func FallbackAnswer(records []rag.ScoredRecord) string {
	if len(records) == 0 {
		return NoAnswer
	}
	top := records[0]
	var b strings.Builder
	if top.Title != "" {
		b.WriteString("**")
		b.WriteString(top.Title)
		b.WriteString("**\n\n")
	}
	b.WriteString(top.Content)
	return b.String()
}
