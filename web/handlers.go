// Package web serves a loaded skin over HTTP: screenshots, single sprites,
// re-composed sheets and the visualizer colors.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"html/template"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/andybons/gogif"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/vincent-petithory/dataurl"

	"github.com/brian-armstrong/wsz"
	"github.com/brian-armstrong/wsz/sprites"
)

const generation = 1 // bump if the way we generate images changes

type Handler struct {
	mu        sync.RWMutex
	skin      *wsz.Skin
	signature uint32
	loaded    time.Time
}

// NewHandler constructs a web handler serving s.
func NewHandler(s *wsz.Skin) *Handler {
	h := &Handler{}
	h.SetSkin(s)
	return h
}

// SetSkin replaces the served skin. Requests in flight finish with the
// skin they started with.
func (h *Handler) SetSkin(s *wsz.Skin) {
	sig := signature(s)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.skin = s
	h.signature = sig
	h.loaded = time.Now()
	glog.Infof("serving skin %08x", sig)
}

func (h *Handler) current() (*wsz.Skin, uint32, time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.skin, h.signature, h.loaded
}

// signature is a checksum over the archive contents, used in ETags.
func signature(s *wsz.Skin) uint32 {
	crc := crc32.NewIEEE()
	a := s.Archive()
	for _, name := range a.Names() {
		crc.Write([]byte(name))
		crc.Write(a[name])
	}
	return crc.Sum32()
}

// notModified writes the caching headers and reports whether the client
// already has the resource.
func notModified(w http.ResponseWriter, r *http.Request, etag string, loaded time.Time) bool {
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	w.Header().Set("Last-Modified", loaded.UTC().Format(http.TimeFormat))
	return false
}

func (h *Handler) screenshotHandler(w http.ResponseWriter, r *http.Request) {
	s, sig, loaded := h.current()
	shaped := r.URL.Query().Get("shaped") != ""

	mime := "image/png"
	etag := fmt.Sprintf(`W/"screenshot:%d:%08x:%t:%s"`, generation, sig, shaped, mime)
	if notModified(w, r, etag, loaded) {
		return
	}

	render := s.RenderScreenshot
	if shaped {
		render = s.RenderShaped
	}
	img, err := render()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		glog.Errorf("error encoding screenshot: %v", err)
	}
}

// screenshotGIFHandler serves an animated screenshot in which the clock
// counts the first ten seconds.
func (h *Handler) screenshotGIFHandler(w http.ResponseWriter, r *http.Request) {
	s, sig, loaded := h.current()

	mime := "image/gif"
	etag := fmt.Sprintf(`W/"screenshot:%d:%08x:%s"`, generation, sig, mime)
	if notModified(w, r, etag, loaded) {
		return
	}

	c := s.Layout()

	g := gif.GIF{}
	quantizer := gogif.MedianCutQuantizer{NumColor: 255} // Up to 255 colors plus 1 space for transparency.
	for sec := 0; sec < 10; sec++ {
		if err := c.SetSprite("MAIN_TIME_DIGIT_4", s.DigitSprite(sec)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		img, err := s.RenderWith(c)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		pal := image.NewPaletted(img.Bounds(), nil)
		quantizer.Quantize(pal, img.Bounds(), img, image.Point{})

		// gogif's quantizer has no way to reserve a palette entry, so the
		// frame is drawn a second time into a palette that leads with
		// transparency.
		palTransparent := image.NewPaletted(img.Bounds(), append(color.Palette{color.Transparent}, pal.Palette...))
		draw.Draw(palTransparent, img.Bounds(), img, image.Point{}, draw.Over)

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, 100)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	if err := gif.EncodeAll(w, &g); err != nil {
		glog.Errorf("error encoding gif: %v", err)
	}
}

func (h *Handler) spriteHandler(w http.ResponseWriter, r *http.Request) {
	s, sig, loaded := h.current()
	name := mux.Vars(r)["name"]

	img, ok := s.Sprite(name)
	if !ok {
		http.Error(w, "no such sprite in this skin", http.StatusNotFound)
		return
	}
	if img.Bounds().Empty() {
		http.Error(w, "sprite is empty in this skin", http.StatusNotFound)
		return
	}

	mime := "image/png"
	etag := fmt.Sprintf(`W/"sprite:%d:%08x:%s:%s"`, generation, sig, name, mime)
	if notModified(w, r, etag, loaded) {
		return
	}

	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	s, sig, loaded := h.current()
	sheet, err := sprites.ParseSheet(mux.Vars(r)["sheet"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	img, err := sprites.Default().ComposeSheet(sheet, s.Sprites())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if img.Bounds().Empty() {
		http.Error(w, "sheet not present in this skin", http.StatusNotFound)
		return
	}

	mime := "image/bmp"
	etag := fmt.Sprintf(`W/"sheet:%d:%08x:%s:%s"`, generation, sig, sheet, mime)
	if notModified(w, r, etag, loaded) {
		return
	}

	var buf bytes.Buffer
	if err := sprites.Encode(&buf, img, sprites.BMP); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// VisColorsJSON is the body of /viscolor.json.
type VisColorsJSON struct {
	Colors       []string `json:"colors"`
	Background   string   `json:"background,omitempty"`
	Spectrum     []string `json:"spectrum"`
	Oscilloscope []string `json:"oscilloscope"`
	PeakDots     string   `json:"peak_dots,omitempty"`
}

func hexColors(cs []color.RGBA) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, hexColor(c))
	}
	return out
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (h *Handler) visColorHandler(w http.ResponseWriter, r *http.Request) {
	s, _, _ := h.current()
	v := s.VisColors()

	body := VisColorsJSON{
		Colors:       hexColors(v.Colors()),
		Spectrum:     hexColors(v.SpectrumColors()),
		Oscilloscope: hexColors(v.OscilloscopeColors()),
	}
	if c, ok := v.Background(); ok {
		body.Background = hexColor(c)
	}
	if c, ok := v.PeakDots(); ok {
		body.PeakDots = hexColor(c)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		glog.Errorf("error encoding viscolor json: %v", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>skin {{printf "%08x" .Signature}}</title></head>
<body>
<p><img src="/screenshot.png" alt="screenshot"> <img src="/screenshot.png?shaped=1" alt="shaped screenshot"></p>
<table>
{{range .Sprites}}<tr><td><a href="/sprite/{{.Name}}.png">{{.Name}}</a></td><td><img src="{{.URL}}" alt="{{.Name}}"></td></tr>
{{end}}</table>
</body>
</html>
`))

type indexSprite struct {
	Name string
	URL  template.URL
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	s, sig, _ := h.current()

	data := struct {
		Signature uint32
		Sprites   []indexSprite
	}{Signature: sig}
	for _, name := range s.SpriteNames() {
		img, _ := s.Sprite(name)
		if img.Bounds().Empty() {
			continue
		}
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			glog.Errorf("error encoding %s: %v", name, err)
			continue
		}
		byt, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
		if err != nil {
			glog.Errorf("failed to encode data url for %s: %v", name, err)
			continue
		}
		data.Sprites = append(data.Sprites, indexSprite{Name: name, URL: template.URL(byt)})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		glog.Errorf("error rendering index: %v", err)
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/screenshot.png", h.screenshotHandler)
	r.HandleFunc("/screenshot.gif", h.screenshotGIFHandler)
	r.HandleFunc("/sprite/{name:[A-Za-z0-9_]+}.png", h.spriteHandler)
	r.HandleFunc("/sheet/{sheet:[A-Za-z_]+}.bmp", h.sheetHandler)
	r.HandleFunc("/viscolor.json", h.visColorHandler)
}
