package app

import (
	"github.com/sirupsen/logrus"
)

// Context carries per request state into api handlers
type Context struct {
	Logger        logrus.FieldLogger
	RemoteAddress string
	RequestID     string
	Vars          map[string]string
}

// WithLogger returns a copy using logger
func (ctx *Context) WithLogger(logger logrus.FieldLogger) *Context {
	ret := *ctx
	ret.Logger = logger
	return &ret
}

// WithRemoteAddress returns a copy tagged with the client address
func (ctx *Context) WithRemoteAddress(address string) *Context {
	ret := *ctx
	ret.RemoteAddress = address
	return &ret
}

// WithRequestID returns a copy whose logger carries request_id
func (ctx *Context) WithRequestID(id string) *Context {
	ret := ctx.WithLogger(ctx.Logger.WithField("request_id", id))
	ret.RequestID = id
	return ret
}
