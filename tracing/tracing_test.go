package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ident"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceID(t *testing.T) {
	id := ident.MustParse("0123abcd-4567-4890-a123-456789abcdef")
	traceID := TraceID(id)
	assert.Equal(t, "0123abcd45674890a123456789abcdef", traceID.String())
	assert.Equal(t, id, FromTraceID(traceID))
}

func TestAttribute(t *testing.T) {
	id := ident.MustParse("0123abcd-4567-4890-a123-456789abcdef")
	kv := IDAttribute(id)
	assert.EqualValues(t, DefaultKey, kv.Key)
	assert.Equal(t, id.String(), kv.Value.AsString())

	kv = Attribute("tx.id", id)
	assert.EqualValues(t, "tx.id", kv.Key)
}

func TestWithID(t *testing.T) {
	var testCases = []struct {
		description string
		id          ident.ID
		expectOK    bool
	}{
		{description: "generated", id: ident.New(), expectOK: true},
		{description: "nil", id: ident.Nil()},
		{description: "unset", id: ident.Unset()},
	}

	for _, testCase := range testCases {
		ctx := WithID(context.Background(), testCase.id)
		actual, ok := IDFromContext(ctx)
		assert.Equal(t, testCase.expectOK, ok, testCase.description)
		if !testCase.expectOK {
			assert.True(t, actual.IsNil(), testCase.description)
			continue
		}
		assert.Equal(t, testCase.id, actual, testCase.description)
		sc := trace.SpanContextFromContext(ctx)
		assert.True(t, sc.IsRemote(), testCase.description)
		assert.True(t, sc.IsSampled(), testCase.description)
	}
}
