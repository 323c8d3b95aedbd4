package engine

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	storagemocks "sqlcoach/internal/storage/mocks"
	vectormocks "sqlcoach/internal/vectorstore/mocks"
)

func TestTrainAuto_NoDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := New(
		&fakeEmbedder{vec: []float32{0.1}},
		vectormocks.NewMockVectorStore(ctrl),
		testCollection,
		storagemocks.NewMockTrainingStore(ctrl),
		&fakeChat{},
		nil,
		false,
	)

	if _, err := e.TrainAuto(context.Background()); err == nil {
		t.Fatal("TrainAuto() expected error without a configured database")
	}
}
