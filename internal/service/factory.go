package service

import (
	"basepost.app/server/internal/queue"
	"basepost.app/server/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	producer queue.Producer
}

type ServicesConfig struct {
	Stores        *store.Stores
	TxRunner      TxRunner
	EventProducer queue.Producer
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:   cfg.Stores,
		txRunner: cfg.TxRunner,
		producer: cfg.EventProducer,
	}
}

func (s *Services) Sponsors() SponsorService {
	return NewSponsorService(s.stores, s.txRunner, s.producer)
}

func (s *Services) Identity() IdentityService {
	return NewIdentityService(s.stores.Sessions(), s.stores.Users())
}
