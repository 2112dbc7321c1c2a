package mark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/grid"
	"tableflip.dev/daymark/pkg/runner/show"
	"tableflip.dev/daymark/pkg/store"
)

type memoryBlob struct {
	data    map[string][]byte
	saveErr error
}

func (b *memoryBlob) Load(key string) ([]byte, error) {
	v, ok := b.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (b *memoryBlob) Save(key string, data []byte) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.data[key] = append([]byte(nil), data...)
	return nil
}

func newWidget(blob *memoryBlob) *app.Widget {
	return app.New(app.Options{
		Selections: store.NewSelections(blob, store.DefaultKey, nil),
		Now:        time.Date(2022, time.June, 14, 0, 0, 0, 0, time.Local),
	})
}

func TestMarkThenUnmark(t *testing.T) {
	blob := &memoryBlob{data: map[string][]byte{}}
	on := app.Cursor{Year: 2022, Month: 6}

	buf := &bytes.Buffer{}
	m := Mark{Widget: newWidget(blob), On: on, Days: []int{10, 11, 12}, Selected: true, JSON: true, Out: buf}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("mark: %v", err)
	}
	var got show.Month
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if got.Name != "June" || !reflect.DeepEqual(got.Days, []int{10, 11, 12}) {
		t.Fatalf("shown = %+v", got)
	}

	buf.Reset()
	u := Mark{Widget: newWidget(blob), On: on, Days: []int{11}, JSON: true, Out: buf}
	if err := u.Do(context.Background()); err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if got := string(blob.data[store.DefaultKey]); got != `{"2022":{"6":[10,12]}}` {
		t.Fatalf("persisted = %s", got)
	}
}

func TestMarkRejectsDaysOutsideMonth(t *testing.T) {
	blob := &memoryBlob{data: map[string][]byte{}}
	m := Mark{Widget: newWidget(blob), On: app.Cursor{Year: 2022, Month: 2}, Days: []int{29}, Selected: true, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); !errors.Is(err, grid.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if len(blob.data) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestMarkReportsSaveFailure(t *testing.T) {
	blob := &memoryBlob{data: map[string][]byte{}, saveErr: store.ErrUnavailable}
	m := Mark{Widget: newWidget(blob), On: app.Cursor{Year: 2022, Month: 6}, Days: []int{1}, Selected: true, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
