package memcache_fx

import (
	mem "boystrip/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideUploadTickets)

func provideUploadTickets() mem.UploadTicketStore {
	return mem.NewUploadTickets()
}
