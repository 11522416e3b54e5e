package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/futureCreator/checkrun/internal/log"
)

func newTestEngine() (*Engine, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Engine{
		Log:     log.NewNop(),
		Display: &Display{w: buf, verbose: true},
	}, buf
}

func passStep(name string, ran *[]string) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context, lg *log.Logger) error {
			*ran = append(*ran, name)
			return nil
		},
	}
}

func failStep(name string, ran *[]string, err error) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context, lg *log.Logger) error {
			*ran = append(*ran, name)
			return err
		},
	}
}

func TestExecuteAllPassInOrder(t *testing.T) {
	e, _ := newTestEngine()
	var ran []string

	err := e.Execute(context.Background(), []Step{
		passStep("one", &ran),
		passStep("two", &ran),
		passStep("three", &ran),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, ran)
}

func TestExecuteShortCircuitsOnFirstFailure(t *testing.T) {
	e, buf := newTestEngine()
	var ran []string
	boom := errors.New("boom")

	err := e.Execute(context.Background(), []Step{
		passStep("one", &ran),
		passStep("two", &ran),
		failStep("three", &ran, boom),
		passStep("four", &ran),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), `step "three" failed`)
	assert.Equal(t, []string{"one", "two", "three"}, ran)
	assert.Contains(t, buf.String(), "❌")
}

func TestExecuteCancelledContext(t *testing.T) {
	e, _ := newTestEngine()
	var ran []string

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Execute(ctx, []Step{passStep("one", &ran)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, ran)
}

func TestGroupNestsScopes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := &Engine{
		Log:     log.Wrap(zap.New(core)),
		Display: &Display{w: &bytes.Buffer{}, verbose: true},
	}

	inner := Step{
		Name: "Vet",
		Run: func(ctx context.Context, lg *log.Logger) error {
			lg.Info("checking")
			return nil
		},
	}
	err := e.Execute(context.Background(), []Step{e.Group("Check demo", inner)})
	require.NoError(t, err)

	records := logs.All()
	require.Len(t, records, 1)
	assert.Equal(t, "Check demo.Vet", records[0].LoggerName)
}

func TestGroupFailurePropagates(t *testing.T) {
	e, _ := newTestEngine()
	var ran []string
	boom := errors.New("boom")

	err := e.Execute(context.Background(), []Step{
		e.Group("group",
			passStep("a", &ran),
			failStep("b", &ran, boom),
			passStep("c", &ran),
		),
		passStep("after", &ran),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"a", "b"}, ran)
}
