package dto

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestPositionTotalsConcurrentPut(t *testing.T) {
	pt := NewPositionTotals()
	id := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pt.Put(id, Buckets{Materials: 1, Works: 2})
		}()
	}
	wg.Wait()

	got := pt.Get(id)
	if got.Materials != 100 || got.Works != 200 {
		t.Errorf("Get() = %+v, expected 100 materials and 200 works", got)
	}
	if got.Total() != 300 {
		t.Errorf("Total() = %v, expected 300", got.Total())
	}
}

func TestPositionBucketsMarshalJSON(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	data, err := json.Marshal(PositionBuckets{id: {Works: 1.5}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]Buckets
	if err = json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded[id.String()].Works != 1.5 {
		t.Errorf("unexpected json %s", data)
	}
}
