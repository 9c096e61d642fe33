package bootstrap

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/studentdb/api"
	"github.com/fulldump/studentdb/configuration"
	"github.com/fulldump/studentdb/database"
	"github.com/fulldump/studentdb/service"
	"github.com/fulldump/studentdb/store"
)

var VERSION = "dev"

// Bootstrap wires the database and the HTTP server described by c. start
// blocks until stop is called or a termination signal arrives.
func Bootstrap(c *configuration.Configuration) (start, stop func(), err error) {

	policy, err := store.ParsePolicy(c.ParsePolicy)
	if err != nil {
		return nil, nil, err
	}

	db := database.NewDatabase(&database.Config{
		Dir:      c.Dir,
		Filename: c.Filename,
		Policy:   policy,
		Logger:   slog.Default(),
	})

	b := api.Build(service.NewService(db), c.Statics, VERSION, c.ApiKey, c.ApiSecret)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.InterceptorUnavailable(db),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: b,
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen: %w", err)
	}
	log.Println("listening on", ln.Addr().String())

	stopOnce := &sync.Once{}
	stop = func() {
		stopOnce.Do(func() {
			db.Stop()
			s.Shutdown(context.Background())
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		log.Println("Signal received", sig.String())
		stop()
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				log.Println("ERROR:", err.Error())
				s.Shutdown(context.Background())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				log.Println("ERROR:", err.Error())
			}
		}()

		wg.Wait()
	}

	return start, stop, nil
}
