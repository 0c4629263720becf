package ports

import "context"

// AdmissionController is the request rate-limit collaborator. Allow reports
// whether the caller identified by key may proceed. An error means the
// controller itself failed, not that the request was denied.
type AdmissionController interface {
	Allow(ctx context.Context, key string) (bool, error)
}
