package util

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ID random request identifier
type ID []byte

// NewID returns 20 random bytes
func NewID() ID {
	ret := make(ID, 20)
	if _, err := rand.Read(ret); err != nil {
		panic(err)
	}
	return ret
}

// SetResponse builds the {data, status, message} envelope used by every endpoint
func SetResponse(data interface{}, status int, message string) map[string]interface{} {
	response := make(map[string]interface{})
	response["data"] = nil
	if data != nil {
		response["data"] = data
	}
	response["status"] = status
	response["message"] = message
	return response
}

// PrettyPrint writes data as indented JSON
func PrettyPrint(w io.Writer, data interface{}) error {
	byteData, err := json.MarshalIndent(data, "", " ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(byteData))
	return err
}

// RecoverGoroutinePanic logs a recovered panic and forwards it to errChan when one is given
func RecoverGoroutinePanic(errChan chan<- error) {
	if r := recover(); r != nil {
		logrus.Errorf("recovered from go routine panic: %v", r)
		if errChan != nil {
			errChan <- errors.Errorf("error due to panic: %v", r)
		}
	}
}
