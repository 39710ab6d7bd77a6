package sync

import "context"

// RemoteStore adalah kolaborator "dokumen JSON di cloud". Core hanya
// butuh tiga semantik ini dan tidak peduli providernya.
//
//go:generate mockgen -source=remote.go -destination=mock/remote_mock.go -package=mock
type RemoteStore interface {
	Create(ctx context.Context, doc []byte) (string, error)
	Read(ctx context.Context, id string) ([]byte, error)
	Replace(ctx context.Context, id string, doc []byte) error
}
