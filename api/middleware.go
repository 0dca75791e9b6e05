package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/api/common"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/util"
)

const serverFailure = "server failed to process request"

func (a *API) handler(f common.HandlerFuncWithCTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.Config.MaxContentSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxContentSize*1024*1024)
		}
		beginTime := time.Now()

		ctx := a.App.NewContext().
			WithRemoteAddress(a.IPAddressForRequest(r)).
			WithRequestID(base64.RawURLEncoding.EncodeToString(util.NewID()))
		ctx.Vars = mux.Vars(r)

		hijacker, _ := w.(http.Hijacker)
		rec := &common.StatusCodeRecorder{ResponseWriter: w, Hijacker: hijacker}

		defer func() {
			ctx.Logger.WithFields(logrus.Fields{
				"duration":    time.Since(beginTime),
				"status_code": rec.Status(),
				"remote":      ctx.RemoteAddress,
			}).Info(r.Method + " " + r.URL.RequestURI())
		}()

		defer func() {
			if p := recover(); p != nil {
				ctx.Logger.Errorf("recovered from panic\n %v: %s", p, debug.Stack())
				writeError(rec, http.StatusInternalServerError, serverFailure)
			}
		}()

		rec.Header().Set("Content-Type", "application/json")
		rec.Header().Set("X-Request-Id", ctx.RequestID)

		err := f(ctx, rec, r)
		if err == nil {
			return
		}

		var verr *app.ValidationError
		var uerr *app.UserError
		switch {
		case errors.As(err, &verr):
			writeError(rec, http.StatusBadRequest, verr.Message)
		case errors.As(err, &uerr):
			writeError(rec, uerr.StatusCode, uerr.Message)
		default:
			ctx.Logger.WithError(err).Error("request failed")
			writeError(rec, http.StatusInternalServerError, serverFailure)
		}
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(util.SetResponse(nil, 0, message))
}

// IPAddressForRequest resolves the client address, honouring X-Forwarded-For
// when the service sits behind ProxyCount proxies
func (a *API) IPAddressForRequest(r *http.Request) string {
	addr := r.RemoteAddr
	if a.Config.ProxyCount > 0 {
		if h := r.Header.Get("X-Forwarded-For"); h != "" {
			clients := strings.Split(h, ",")
			if a.Config.ProxyCount > len(clients) {
				addr = clients[0]
			} else {
				addr = clients[len(clients)-a.Config.ProxyCount]
			}
		}
	}
	return strings.Split(strings.TrimSpace(addr), ":")[0]
}
