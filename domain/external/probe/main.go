//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package probe

import "context"

// Prober checks that an endpoint answers. It does not speak the endpoint's protocol.
type Prober interface {
	Probe(ctx context.Context, host, port string) error
}
