package main

import (
	"log"
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spencer-p/idealtime/pkg/config"
	"github.com/spencer-p/idealtime/pkg/handlers"
	"github.com/spencer-p/idealtime/pkg/metrics"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	svc, closeDB, err := env.Service()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer closeDB()

	r := mux.NewRouter().StrictSlash(true)
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, svc)
	s.Handle("/metrics", promhttp.Handler())

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(env.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		gorillahandlers.AllowCredentials(),
	)

	srv := &http.Server{
		Handler:      cors(metrics.LatencyHandler(r)),
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 2*env.UpstreamTimeout + 15*time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Listening and serving on %s/%s", srv.Addr, env.Prefix[1:])
	log.Fatal(srv.ListenAndServe())
}
