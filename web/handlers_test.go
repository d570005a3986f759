package web

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/gif"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/image/bmp"

	"github.com/brian-armstrong/wsz"
	"github.com/brian-armstrong/wsz/archive"
	"github.com/brian-armstrong/wsz/sprites"
	"github.com/brian-armstrong/wsz/ttesting"
)

func testArchive(t *testing.T, vis string) archive.Archive {
	t.Helper()
	var main, cbuttons bytes.Buffer
	if err := sprites.Encode(&main, ttesting.Pattern(275, 116), sprites.BMP); err != nil {
		t.Fatal(err)
	}
	if err := sprites.Encode(&cbuttons, ttesting.Solid(50, 36, color.RGBA{R: 0xFF, A: 0xFF}), sprites.BMP); err != nil {
		t.Fatal(err)
	}
	return archive.Archive{
		"MAIN.BMP":     main.Bytes(),
		"CBUTTONS.BMP": cbuttons.Bytes(),
		"viscolor.txt": []byte(vis),
	}
}

func testSkin(t *testing.T, vis string) *wsz.Skin {
	t.Helper()
	s, err := wsz.FromArchive(testArchive(t, vis))
	if err != nil {
		t.Fatalf("FromArchive: %v", err)
	}
	return s
}

func newServer(t *testing.T, h *Handler) *httptest.Server {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, header http.Header) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	return resp, buf.Bytes()
}

func TestScreenshot(t *testing.T) {
	srv := newServer(t, NewHandler(testSkin(t, "")))

	resp, body := get(t, srv.URL+"/screenshot.png", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	ttesting.AssertEqualString(t, "content type", resp.Header.Get("Content-Type"), "image/png")
	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	ttesting.AssertSize(t, "screenshot", img, 275, 435)
	ttesting.AssertColorAt(t, "play button", img, 39, 88, color.RGBA{R: 0xFF, A: 0xFF})

	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("no ETag")
	}
	resp, _ = get(t, srv.URL+"/screenshot.png", http.Header{"If-None-Match": {etag}})
	ttesting.AssertEqualInt(t, "revalidated", resp.StatusCode, http.StatusNotModified)

	resp, _ = get(t, srv.URL+"/screenshot.png?shaped=1", http.Header{"If-None-Match": {etag}})
	ttesting.AssertEqualInt(t, "shaped has its own etag", resp.StatusCode, http.StatusOK)
}

func TestSetSkinChangesETag(t *testing.T) {
	h := NewHandler(testSkin(t, "1,2,3\n"))
	srv := newServer(t, h)

	resp, _ := get(t, srv.URL+"/screenshot.png", nil)
	etag := resp.Header.Get("ETag")

	h.SetSkin(testSkin(t, "4,5,6\n"))
	resp, _ = get(t, srv.URL+"/screenshot.png", http.Header{"If-None-Match": {etag}})
	ttesting.AssertEqualInt(t, "new skin", resp.StatusCode, http.StatusOK)
}

func TestScreenshotGIF(t *testing.T) {
	srv := newServer(t, NewHandler(testSkin(t, "")))
	resp, body := get(t, srv.URL+"/screenshot.gif", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	g, err := gif.DecodeAll(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("gif.DecodeAll: %v", err)
	}
	ttesting.AssertEqualInt(t, "frames", len(g.Image), 10)
	ttesting.AssertSize(t, "frame", g.Image[0], 275, 435)
}

func TestSprite(t *testing.T) {
	srv := newServer(t, NewHandler(testSkin(t, "")))

	resp, body := get(t, srv.URL+"/sprite/MAIN_PLAY_BUTTON.png", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	img, err := png.Decode(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	ttesting.AssertSize(t, "play button", img, 23, 18)

	for _, tc := range []struct {
		name string
		path string
	}{
		{"unknown", "/sprite/NOPE.png"},
		{"missing sheet", "/sprite/EQ_WINDOW_BACKGROUND.png"},
		{"empty", "/sprite/MAIN_EJECT_BUTTON.png"},
	} {
		resp, _ := get(t, srv.URL+tc.path, nil)
		ttesting.AssertEqualInt(t, tc.name, resp.StatusCode, http.StatusNotFound)
	}
}

func TestSheet(t *testing.T) {
	srv := newServer(t, NewHandler(testSkin(t, "")))

	resp, body := get(t, srv.URL+"/sheet/main.bmp", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	img, err := bmp.Decode(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	ttesting.AssertSameImage(t, "main sheet", img, ttesting.Pattern(275, 116))

	resp, _ = get(t, srv.URL+"/sheet/NOPE.bmp", nil)
	ttesting.AssertEqualInt(t, "unknown sheet", resp.StatusCode, http.StatusNotFound)
	resp, _ = get(t, srv.URL+"/sheet/EQMAIN.bmp", nil)
	ttesting.AssertEqualInt(t, "absent sheet", resp.StatusCode, http.StatusNotFound)
}

func TestVisColors(t *testing.T) {
	srv := newServer(t, NewHandler(testSkin(t, "0,0,0\n255,0,16\n")))
	resp, body := get(t, srv.URL+"/viscolor.json", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, body)
	}
	var got VisColorsJSON
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("json: %v", err)
	}
	ttesting.AssertEqualInt(t, "colors", len(got.Colors), 2)
	ttesting.AssertEqualString(t, "second", got.Colors[1], "#ff0010")
	ttesting.AssertEqualString(t, "background", got.Background, "#000000")
	ttesting.AssertEqualString(t, "peak dots", got.PeakDots, "")
}

func TestIndex(t *testing.T) {
	srv := newServer(t, NewHandler(testSkin(t, "")))
	resp, body := get(t, srv.URL+"/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	page := string(body)
	for _, want := range []string{`href="/sprite/MAIN_WINDOW_BACKGROUND.png"`, `src="data:image/png;base64,`} {
		if !strings.Contains(page, want) {
			t.Errorf("index lacks %s", want)
		}
	}
	if strings.Contains(page, "MAIN_EJECT_BUTTON") {
		t.Error("index lists an empty sprite")
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skin.wsz")
	write := func(vis string) {
		var buf bytes.Buffer
		if err := archive.Write(&buf, testArchive(t, vis)); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("1,1,1\n")
	s, err := wsz.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandler(s)
	w, err := h.Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	write("1,1,1\n2,2,2\n")
	select {
	case <-w.Reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("skin not reloaded")
	}
	cur, _, _ := h.current()
	ttesting.AssertEqualInt(t, "reloaded vis colors", cur.VisColors().Len(), 2)
}

func TestWatchKeepsSkinOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skin.wsz")
	if err := os.WriteFile(path, []byte("placeholder"), 0644); err != nil {
		t.Fatal(err)
	}
	orig := testSkin(t, "")
	h := NewHandler(orig)
	w, err := h.Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	w.reload() // not a zip
	if cur, _, _ := h.current(); cur != orig {
		t.Error("failed reload replaced the skin")
	}
}
