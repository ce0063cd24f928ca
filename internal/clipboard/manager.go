// Package clipboard wraps pasteboard access and keeps a bounded copy
// history. Only the singleton "clipboard" resource exists.
package clipboard

import (
	"context"
	"log"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

// HistoryLimit caps the copy history; the newest entries win.
const HistoryLimit = 100

// Manager serializes clipboard access and owns the history.
type Manager struct {
	mu      sync.Mutex
	logger  *log.Logger
	sys     platform.SystemOperations
	history []*pb.ClipboardHistoryEntry
	now     func() time.Time
}

// NewManager returns a manager backed by sys.
func NewManager(sys platform.SystemOperations) *Manager {
	return &Manager{
		logger: log.New(log.Writer(), "[CLIPBOARD] ", log.LstdFlags),
		sys:    sys,
		now:    time.Now,
	}
}

var probeOrder = []platform.ClipboardKind{
	platform.ClipText, platform.ClipRTF, platform.ClipHTML,
	platform.ClipImage, platform.ClipFiles, platform.ClipURL,
}

func kindToType(k platform.ClipboardKind) pb.ClipboardType {
	switch k {
	case platform.ClipText:
		return pb.ClipboardType_TEXT
	case platform.ClipRTF:
		return pb.ClipboardType_RTF
	case platform.ClipHTML:
		return pb.ClipboardType_HTML
	case platform.ClipImage:
		return pb.ClipboardType_IMAGE
	case platform.ClipFiles:
		return pb.ClipboardType_FILES
	case platform.ClipURL:
		return pb.ClipboardType_URL
	}
	return pb.ClipboardType_CLIPBOARD_TYPE_UNSPECIFIED
}

func has(data *platform.ClipboardData, k platform.ClipboardKind) bool {
	for _, present := range data.Available {
		if present == k {
			return true
		}
	}
	return false
}

func contentFor(data *platform.ClipboardData, k platform.ClipboardKind) *pb.ClipboardContent {
	switch k {
	case platform.ClipText:
		return &pb.ClipboardContent{Text: &pb.TextContent{Value: data.Text}}
	case platform.ClipRTF:
		return &pb.ClipboardContent{Rtf: &pb.RtfContent{Data: data.RTF}}
	case platform.ClipHTML:
		return &pb.ClipboardContent{Html: &pb.HtmlContent{Value: data.HTML}}
	case platform.ClipImage:
		return &pb.ClipboardContent{Image: &pb.ImageContent{PngData: data.PNG}}
	case platform.ClipFiles:
		return &pb.ClipboardContent{Files: &pb.FilesContent{Paths: data.Files}}
	case platform.ClipURL:
		return &pb.ClipboardContent{Url: &pb.UrlContent{Value: data.URL}}
	}
	return nil
}

// Read probes the pasteboard in fixed flavor order; the first present
// flavor becomes the primary content.
func (m *Manager) Read(ctx context.Context) (*pb.Clipboard, error) {
	data, err := m.sys.ReadClipboard(ctx)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	out := &pb.Clipboard{Name: names.ClipboardName}
	for _, k := range probeOrder {
		if !has(data, k) {
			continue
		}
		if out.Content == nil {
			out.Content = contentFor(data, k)
		}
		out.AvailableTypes = append(out.AvailableTypes, kindToType(k))
	}
	return out, nil
}

func toData(content *pb.ClipboardContent) (*platform.ClipboardData, error) {
	data := &platform.ClipboardData{}
	switch {
	case content.Text != nil:
		data.Available = []platform.ClipboardKind{platform.ClipText}
		data.Text = content.Text.Value
	case content.Rtf != nil:
		data.Available = []platform.ClipboardKind{platform.ClipRTF}
		data.RTF = content.Rtf.Data
	case content.Html != nil:
		data.Available = []platform.ClipboardKind{platform.ClipHTML}
		data.HTML = content.Html.Value
	case content.Image != nil:
		data.Available = []platform.ClipboardKind{platform.ClipImage}
		data.PNG = content.Image.PngData
	case content.Files != nil:
		data.Available = []platform.ClipboardKind{platform.ClipFiles}
		data.Files = content.Files.Paths
	case content.Url != nil:
		data.Available = []platform.ClipboardKind{platform.ClipURL}
		data.URL = content.Url.Value
	default:
		return nil, apierr.RequiredField("content")
	}
	return data, nil
}

// Write clears then writes the given variant, and on success records a
// history entry attributed to the frontmost application.
func (m *Manager) Write(ctx context.Context, content *pb.ClipboardContent) (*pb.Clipboard, error) {
	if content == nil {
		return nil, apierr.RequiredField("content")
	}
	data, err := toData(content)
	if err != nil {
		return nil, err
	}
	if err := m.sys.ClearClipboard(ctx); err != nil {
		return nil, apierr.Platform(err)
	}
	if err := m.sys.WriteClipboard(ctx, data); err != nil {
		return nil, apierr.Platform(err)
	}

	source := ""
	if app, err := m.sys.FrontmostApplication(ctx); err == nil {
		source = app.Name
	}
	m.mu.Lock()
	m.history = append([]*pb.ClipboardHistoryEntry{{
		Content:           content.Clone(),
		CopyTime:          timestamppb.New(m.now()),
		SourceApplication: source,
	}}, m.history...)
	if len(m.history) > HistoryLimit {
		m.history = m.history[:HistoryLimit]
	}
	m.mu.Unlock()

	return &pb.Clipboard{
		Name:           names.ClipboardName,
		Content:        content.Clone(),
		AvailableTypes: typesOf(content),
	}, nil
}

func typesOf(content *pb.ClipboardContent) []pb.ClipboardType {
	switch {
	case content.Text != nil:
		return []pb.ClipboardType{pb.ClipboardType_TEXT}
	case content.Rtf != nil:
		return []pb.ClipboardType{pb.ClipboardType_RTF}
	case content.Html != nil:
		return []pb.ClipboardType{pb.ClipboardType_HTML}
	case content.Image != nil:
		return []pb.ClipboardType{pb.ClipboardType_IMAGE}
	case content.Files != nil:
		return []pb.ClipboardType{pb.ClipboardType_FILES}
	case content.Url != nil:
		return []pb.ClipboardType{pb.ClipboardType_URL}
	}
	return nil
}

// Clear wipes the pasteboard. History is untouched.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.sys.ClearClipboard(ctx); err != nil {
		return apierr.Platform(err)
	}
	return nil
}

// History returns the newest-first copy history.
func (m *Manager) History() []*pb.ClipboardHistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*pb.ClipboardHistoryEntry, len(m.history))
	for i, e := range m.history {
		out[i] = e.Clone()
	}
	return out
}
