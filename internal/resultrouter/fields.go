package resultrouter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kestrelql/resultrouter/internal/queryid"
)

func errField(err error) zapcore.Field {
	return zap.NamedError("error", err)
}

func queryField(id queryid.ID) zapcore.Field {
	return zap.Stringer("query_id", id)
}

func sourceField(source int64) zapcore.Field {
	return zap.Int64("source_id", source)
}
