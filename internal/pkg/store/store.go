package store

import (
	"github.com/ougirez/tendermarkup/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

//go:generate mockgen -destination=mocks/store_mock.go -package=mock_store github.com/ougirez/tendermarkup/internal/pkg/store Store

type Store interface {
	TenderStore
	BOQStore
	MarkupConfigurationStore
	MarkupTemplateStore
}

type store struct {
	pool *Pool
}

func NewStore(conn xpgx.Conn) Store {
	return &store{pool: xpgx.NewPool(conn)}
}
