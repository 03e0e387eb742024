package importer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"momgyeot-ai/internal/storage"
	"momgyeot-ai/internal/storage/mocks"
)

func TestImporter_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), sampleDoc)
	writeFile(t, filepath.Join(root, "prep.yaml"), "- id: PREP-001\n  title: 엽산\n  content: 엽산 복용\n")
	writeFile(t, filepath.Join(root, "broken.json"), `[{"title":"no id"}]`)
	writeFile(t, filepath.Join(root, "empty.md"), "")

	store := mocks.NewMockKnowledgeStore(ctrl)
	store.EXPECT().
		UpsertKnowledge(gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(_ context.Context, records []storage.KnowledgeRecord) error {
			if records[0].ID != "A-001" {
				t.Errorf("first markdown record id = %s", records[0].ID)
			}
			return nil
		})
	store.EXPECT().UpsertKnowledge(gomock.Any(), gomock.Len(1)).Return(nil)

	report, err := New(store).Import(context.Background(), root)
	if err == nil {
		t.Fatal("Import() should report the broken file")
	}
	if report.Files != 4 || report.Records != 4 || report.Failed != 1 {
		t.Errorf("Import() report = %+v", report)
	}
}

func TestImporter_Import_SinkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "c.json")
	writeFile(t, path, `[{"id":"C-001","title":"황달","content":"확인"}]`)

	store := mocks.NewMockKnowledgeStore(ctrl)
	store.EXPECT().UpsertKnowledge(gomock.Any(), gomock.Any()).Return(errors.New("status 401"))

	report, err := New(store).Import(context.Background(), path)
	if err == nil || report.Failed != 1 || report.Records != 0 {
		t.Errorf("Import() = %+v, %v", report, err)
	}
}
