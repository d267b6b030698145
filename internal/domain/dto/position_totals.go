package dto

import (
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Buckets: итоговые колонки позиции после перераспределения наценки.
type Buckets struct {
	Materials    float64 `json:"materials"`
	Works        float64 `json:"works"`
	SubMaterials float64 `json:"submaterials"`
	SubWorks     float64 `json:"subworks"`
}

func (b Buckets) Add(other Buckets) Buckets {
	return Buckets{
		Materials:    b.Materials + other.Materials,
		Works:        b.Works + other.Works,
		SubMaterials: b.SubMaterials + other.SubMaterials,
		SubWorks:     b.SubWorks + other.SubWorks,
	}
}

func (b Buckets) Total() float64 {
	return b.Materials + b.Works + b.SubMaterials + b.SubWorks
}

// PositionBuckets: итоги по позициям. В JSON ключи пишутся строками uuid.
type PositionBuckets map[uuid.UUID]Buckets

func (pb PositionBuckets) MarshalJSON() ([]byte, error) {
	byID := make(map[string]Buckets, len(pb))
	for id, b := range pb {
		byID[id.String()] = b
	}
	return sonic.ConfigStd.Marshal(byID)
}

// PositionTotals собирает «Итого материал / Итого работа» по позициям.
// Безопасен для конкурентного заполнения.
type PositionTotals struct {
	Positions   map[uuid.UUID]Buckets
	positionsMx sync.Mutex
}

func NewPositionTotals() *PositionTotals {
	return &PositionTotals{Positions: make(map[uuid.UUID]Buckets)}
}

func (pt *PositionTotals) Put(positionID uuid.UUID, buckets Buckets) {
	pt.positionsMx.Lock()
	defer pt.positionsMx.Unlock()

	pt.Positions[positionID] = pt.Positions[positionID].Add(buckets)
}

func (pt *PositionTotals) Get(positionID uuid.UUID) Buckets {
	pt.positionsMx.Lock()
	defer pt.positionsMx.Unlock()

	return pt.Positions[positionID]
}

// Snapshot returns a copy safe to hand out after accumulation.
func (pt *PositionTotals) Snapshot() PositionBuckets {
	pt.positionsMx.Lock()
	defer pt.positionsMx.Unlock()

	res := make(PositionBuckets, len(pt.Positions))
	for id, b := range pt.Positions {
		res[id] = b
	}
	return res
}
