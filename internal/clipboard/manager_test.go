package clipboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

func newTestManager(t *testing.T) (*Manager, *platform.Simulator) {
	t.Helper()
	sim := platform.NewSimulator()
	t.Cleanup(sim.Close)
	return NewManager(sim), sim
}

func TestWriteThenRead(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	out, err := m.Write(ctx, &pb.ClipboardContent{Text: &pb.TextContent{Value: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, "clipboard", out.Name)
	assert.Equal(t, []pb.ClipboardType{pb.ClipboardType_TEXT}, out.AvailableTypes)

	got, err := m.Read(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Content)
	require.NotNil(t, got.Content.Text)
	assert.Equal(t, "hello", got.Content.Text.Value)
}

func TestReadEmptyClipboard(t *testing.T) {
	m, _ := newTestManager(t)
	got, err := m.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got.Content)
	assert.Empty(t, got.AvailableTypes)
}

func TestProbeOrderPrefersText(t *testing.T) {
	m, sim := newTestManager(t)
	ctx := context.Background()
	require.NoError(t, sim.WriteClipboard(ctx, &platform.ClipboardData{
		Available: []platform.ClipboardKind{platform.ClipHTML, platform.ClipText},
		Text:      "plain",
		HTML:      "<b>rich</b>",
	}))

	got, err := m.Read(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Content.Text, "text wins over html in the probe order")
	assert.Equal(t, "plain", got.Content.Text.Value)
	assert.Equal(t, []pb.ClipboardType{pb.ClipboardType_TEXT, pb.ClipboardType_HTML}, got.AvailableTypes)
}

func TestWriteRequiresContent(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.Write(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonRequiredField, apierr.Reason(err))

	_, err = m.Write(context.Background(), &pb.ClipboardContent{})
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonRequiredField, apierr.Reason(err))
}

func TestClear(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()
	_, err := m.Write(ctx, &pb.ClipboardContent{Text: &pb.TextContent{Value: "gone"}})
	require.NoError(t, err)
	require.NoError(t, m.Clear(ctx))

	got, err := m.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, got.Content)
	assert.Len(t, m.History(), 1, "clear leaves the history alone")
}

func TestHistoryNewestFirstAndBounded(t *testing.T) {
	m, sim := newTestManager(t)
	sim.SimAddApp("TextEdit", "com.apple.TextEdit")
	ctx := context.Background()

	for i := 0; i < HistoryLimit+5; i++ {
		_, err := m.Write(ctx, &pb.ClipboardContent{Text: &pb.TextContent{Value: fmt.Sprintf("copy-%d", i)}})
		require.NoError(t, err)
	}

	hist := m.History()
	require.Len(t, hist, HistoryLimit, "history is capped")
	assert.Equal(t, fmt.Sprintf("copy-%d", HistoryLimit+4), hist[0].Content.Text.Value, "newest first")
	assert.Equal(t, "TextEdit", hist[0].SourceApplication)
}
