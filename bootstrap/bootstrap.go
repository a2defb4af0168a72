package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/todos/api"
	"github.com/fulldump/todos/configuration"
	"github.com/fulldump/todos/todo"
)

var VERSION = "dev"

// Bootstrap wires the store, the API and the HTTP server. start blocks until
// stop is called or the process receives SIGINT/SIGTERM.
func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	store := todo.NewStore(c.InboxSize)

	b := api.Build(store, VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.RequestID,
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
		api.InterceptorUnavailable(store),
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: b,
	}

	tlsConfig, err := newTLSConfig(c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	s.TLSConfig = tlsConfig

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stopOnce := &sync.Once{}
	stop = func() {
		stopOnce.Do(func() {
			store.Stop()
			s.Shutdown(context.Background())
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		fmt.Println("Signal received", sig.String())
		stop()
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Run()
			log.Println("store stopped")
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if s.TLSConfig != nil {
				err = s.ServeTLS(ln, "", "")
			} else {
				err = s.Serve(ln)
			}
			if err != nil && err != http.ErrServerClosed {
				log.Println("ERROR:", err.Error())
			}
		}()

		wg.Wait()
	}

	return
}

// newTLSConfig returns nil when HTTPS is off. There is no certificate file
// setting, so HTTPS is always served with a certificate generated at startup.
func newTLSConfig(c *configuration.Configuration) (*tls.Config, error) {

	if !c.HttpsEnabled && !c.HttpsSelfsigned {
		return nil, nil
	}

	log.Println("HTTPS Selfsigned")
	cert, err := selfSignedCertificate()
	if err != nil {
		return nil, fmt.Errorf("self-signed certificate: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
	}, nil
}
