package importer

import (
	"reflect"
	"testing"
)

const sampleDoc = `# 모유수유

이 문단은 어떤 기록에도 속하지 않아요.

## 젖몸살 대처법
젖몸살은 유방이 단단하게 붓는 상태예요.
따뜻한 찜질을 해보세요.

- 키워드: 젖몸살, 울혈 , 통증
- 긴급도: 24시간내확인
- 자주 수유하기
- 마사지하기

## 유선염 신호
열이 38도 이상이면 병원에 가세요.

# 임신

## 입덧 완화
1. 소량씩 자주 먹기
2. 수분 섭취

| 증상 | 대처 |
|---|---|
| 구토 | 병원 |
`

func TestMarkdownParser_Parse(t *testing.T) {
	records, err := NewMarkdownParser().Parse([]byte(sampleDoc), "knowledge/a.md")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Parse() returned %d records, want 3: %+v", len(records), records)
	}

	first := records[0]
	if first.ID != "A-001" || first.Title != "젖몸살 대처법" || first.Category != "모유수유" {
		t.Errorf("first record = %+v", first)
	}
	if !reflect.DeepEqual(first.Keywords, []string{"젖몸살", "울혈", "통증"}) {
		t.Errorf("first record keywords = %v", first.Keywords)
	}
	if first.Urgency != "24시간내확인" {
		t.Errorf("first record urgency = %q", first.Urgency)
	}
	wantContent := "젖몸살은 유방이 단단하게 붓는 상태예요.\n따뜻한 찜질을 해보세요.\n\n- 자주 수유하기\n- 마사지하기"
	if first.Content != wantContent {
		t.Errorf("first record content = %q, want %q", first.Content, wantContent)
	}

	second := records[1]
	if second.ID != "A-002" || second.Category != "모유수유" || second.Content != "열이 38도 이상이면 병원에 가세요." {
		t.Errorf("second record = %+v", second)
	}
	if second.Keywords == nil || len(second.Keywords) != 0 || second.Urgency != "" {
		t.Errorf("second record metadata = %v / %q", second.Keywords, second.Urgency)
	}

	third := records[2]
	if third.ID != "A-003" || third.Category != "임신" {
		t.Errorf("third record = %+v", third)
	}
	wantTable := "1. 소량씩 자주 먹기\n2. 수분 섭취\n\n증상 | 대처\n구토 | 병원"
	if third.Content != wantTable {
		t.Errorf("third record content = %q, want %q", third.Content, wantTable)
	}
}

func TestMarkdownParser_Parse_Empty(t *testing.T) {
	p := NewMarkdownParser()

	records, err := p.Parse(nil, "prep.md")
	if err != nil || len(records) != 0 {
		t.Errorf("Parse(empty) = %v, %v", records, err)
	}

	records, err = p.Parse([]byte("# 카테고리만\n\n본문"), "prep.md")
	if err != nil || len(records) != 0 {
		t.Errorf("Parse(no sections) = %v, %v", records, err)
	}
}

func TestIDPrefix(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"prep.md", "PREP"},
		{"/data/kb/preg.markdown", "PREG"},
		{"a.md", "A"},
		{"noext", "NOEXT"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := IDPrefix(tt.filename); got != tt.want {
				t.Errorf("IDPrefix(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
