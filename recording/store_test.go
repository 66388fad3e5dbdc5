package recording

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"github.com/gogpu/tin"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "frames.sqlite"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	dc, rec := newRecordingContext(t, WithStore(store))
	img := newTestImage(3, 2)

	runFrame(dc, func() {
		dc.Background(0.2, 0.3, 0.4)
		dc.FillColorFromRGBA(0.1, 0.2, 0.3, 0.4)
		dc.Translate(5, 5)
		dc.DrawRect(0, 0, 10, 10)
		dc.DrawLine(0, 0, 3, 4)
		dc.DrawImage(img, 1, 1)
		dc.DrawText("stored", tin.Font{Name: "x.ttf", Size: 9}, 0, 0)
	})
	if err := rec.Err(); err != nil {
		t.Fatalf("recorder store error = %v", err)
	}

	want := rec.Last()
	got, err := store.Load(ctx, want.Number)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Size != want.Size {
		t.Errorf("Size = %v, want %v", got.Size, want.Size)
	}
	if !slices.Equal(got.Kinds(), want.Kinds()) {
		t.Fatalf("Kinds() = %v, want %v", got.Kinds(), want.Kinds())
	}
	for i := range want.Primitives {
		w, g := want.Primitives[i], got.Primitives[i]
		if !slices.Equal(w.Points, g.Points) || w.Brush != g.Brush || w.State != g.State ||
			w.Bounds != g.Bounds || w.Color != g.Color || w.Text != g.Text || w.Font != g.Font {
			t.Errorf("primitive %d = %+v, want %+v", i, g, w)
		}
	}

	imgPrim := got.Primitives[3]
	loaded := got.Image(imgPrim.Image)
	if loaded == nil {
		t.Fatal("stored image was not restored")
	}
	if loaded.Width() != 3 || loaded.Height() != 2 {
		t.Errorf("restored image = %dx%d, want 3x2", loaded.Width(), loaded.Height())
	}
}

func TestStoreCountAndNumbers(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	dc, _ := newRecordingContext(t, WithStore(store))
	for range 4 {
		runFrame(dc, func() { dc.DrawRect(0, 0, 1, 1) })
	}

	n, err := store.Count(ctx)
	if err != nil || n != 4 {
		t.Fatalf("Count() = %d, %v, want 4", n, err)
	}
	numbers, err := store.Numbers(ctx)
	if err != nil {
		t.Fatalf("Numbers() error = %v", err)
	}
	if !slices.Equal(numbers, []uint64{1, 2, 3, 4}) {
		t.Errorf("Numbers() = %v", numbers)
	}
}

func TestStoreSaveReplacesFrame(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	f := &Frame{Number: 7, Size: tin.NewFrame(10, 10), Primitives: []Primitive{
		{Kind: tin.CallRect}, {Kind: tin.CallLine},
	}}
	if err := store.Save(ctx, f); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	f.Primitives = f.Primitives[:1]
	if err := store.Save(ctx, f); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := store.Load(ctx, 7)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Primitives) != 1 {
		t.Errorf("Load() has %d primitives, want 1", len(got.Primitives))
	}
}

func TestStoreLoadMissingFrame(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Load(context.Background(), 99)
	if !errors.Is(err, ErrFrameNotFound) {
		t.Errorf("Load() error = %v, want ErrFrameNotFound", err)
	}
}

func TestStoredPrimitivesMatchSchema(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	dc, _ := newRecordingContext(t, WithStore(store))
	runFrame(dc, func() {
		dc.Background(1, 1, 1)
		dc.DrawArc(10, 10, 5, 0, 1)
		dc.DrawRoundedRect(tin.Rect{Width: 4, Height: 4}, 1, 1)
		dc.PathBegin()
		dc.PathVertex(1, 1)
		dc.PathEnd()
		dc.DrawText("schema", tin.Font{}, 0, 0)
	})

	rows, err := store.db.QueryContext(ctx, `SELECT kind, data FROM primitives ORDER BY seq`)
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	defer rows.Close()

	schema := gojsonschema.NewBytesLoader(PrimitiveSchema)
	n := 0
	for rows.Next() {
		var kind, data string
		if err := rows.Scan(&kind, &data); err != nil {
			t.Fatal(err)
		}
		result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(data))
		if err != nil {
			t.Fatalf("Validate(%s) error = %v", kind, err)
		}
		if !result.Valid() {
			for _, e := range result.Errors() {
				t.Errorf("%s: %s", kind, e)
			}
		}
		n++
	}
	if n != 7 {
		t.Errorf("validated %d primitives, want 7", n)
	}
}
