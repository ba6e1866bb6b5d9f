// Package metrics exposes friend-list activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/eatnsplit/internal/storage"
)

const namespace = "eatnsplit"

// Metrics holds the collectors recorded by the coordinator.
type Metrics struct {
	FriendsAdded   prometheus.Counter
	FriendsDeleted prometheus.Counter
	BillsSplit     *prometheus.CounterVec
	EventsIgnored  *prometheus.CounterVec
}

// New registers the collectors with reg. The friends gauge reads store on scrape.
func New(reg prometheus.Registerer, store storage.FriendStore) *Metrics {
	f := promauto.With(reg)

	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "friends",
		Help:      "Number of friends in the list.",
	}, func() float64 {
		return float64(store.Len())
	})

	return &Metrics{
		FriendsAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "friends_added_total",
			Help:      "Friends added through the add-friend form.",
		}),
		FriendsDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "friends_deleted_total",
			Help:      "Friends removed after confirmation.",
		}),
		BillsSplit: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_split_total",
			Help:      "Bills split with a friend, by who paid.",
		}, []string{"payer"}),
		EventsIgnored: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_ignored_total",
			Help:      "Events that did not apply in the current state.",
		}, []string{"event"}),
	}
}

// NewNop returns Metrics registered on a private registry, for callers that
// don't export metrics.
func NewNop(store storage.FriendStore) *Metrics {
	return New(prometheus.NewRegistry(), store)
}
