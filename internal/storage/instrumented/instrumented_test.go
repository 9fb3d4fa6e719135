package instrumented_test

import (
	"context"
	"testing"

	"link-shortener/internal/lib/metrics"
	"link-shortener/internal/storage"
	"link-shortener/internal/storage/instrumented"
	"link-shortener/internal/storage/memory"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStorage_RecordsOperations(t *testing.T) {
	ctx := context.Background()
	s := instrumented.New(memory.New(0))

	putBefore := testutil.ToFloat64(metrics.StorageOperationsTotal.WithLabelValues("Put", "success"))
	missBefore := testutil.ToFloat64(metrics.StorageOperationsTotal.WithLabelValues("Get", "not_found"))

	require.NoError(t, s.Put(ctx, "x", "https://e.com"))

	url, err := s.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, "https://e.com", url)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.Equal(t, putBefore+1, testutil.ToFloat64(metrics.StorageOperationsTotal.WithLabelValues("Put", "success")))
	require.Equal(t, missBefore+1, testutil.ToFloat64(metrics.StorageOperationsTotal.WithLabelValues("Get", "not_found")))
}
