// Command wszweb serves a live preview of a skin.
package main

import (
	"flag"
	"net"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/net/netutil"

	"github.com/brian-armstrong/wsz"
	"github.com/brian-armstrong/wsz/paths"
	"github.com/brian-armstrong/wsz/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for wszweb")
	maxConns      = flag.Int("max_conns", 64, "maximum number of simultaneous connections; 0 for no limit")
	watch         = flag.Bool("watch", true, "reload the skin when the file changes")
)

var skinPath string

func init() {
	paths.SetupSkinFlag("base.wsz", "skin", &skinPath)
}

func main() {
	flagutil.Parse()

	path := skinPath
	if path == "" {
		glog.Exitf("no skin found; pass -skin or set %s", paths.EnvVar)
	}
	if _, err := os.Stat(path); err != nil {
		if found := paths.Find(path); found != "" {
			path = found
		}
	}
	s, err := wsz.Open(path)
	if err != nil {
		glog.Exitf("opening %s: %v", path, err)
	}

	h := web.NewHandler(s)
	if *watch {
		w, err := h.Watch(path)
		if err != nil {
			glog.Exitf("watching %s: %v", path, err)
		}
		defer w.Close()
	}

	r := mux.NewRouter()
	h.RegisterRoutes(r)

	l, err := net.Listen("tcp", *listenAddress)
	if err != nil {
		glog.Exit(err)
	}
	if *maxConns > 0 {
		l = netutil.LimitListener(l, *maxConns)
	}
	glog.Infof("serving %s on %s", path, l.Addr())
	glog.Fatal(http.Serve(l, handlers.LoggingHandler(os.Stderr, handlers.CompressHandler(r))))
}
