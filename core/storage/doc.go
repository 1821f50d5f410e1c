// Package storage provides the object-storage client used to mirror box art.
//
// It wraps minio-go behind a small Client interface so features and tests can
// substitute a mock (see the mocks subpackage). Only the operations the
// application actually needs are exposed.
package storage
