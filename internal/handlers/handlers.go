package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// SendJSONStatus writes v with the given status. Nothing is written if v
// cannot be marshalled.
func SendJSONStatus(w http.ResponseWriter, status int, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(payload)
}

func SendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, v any) {
	sendJSONOrLog(w, log, http.StatusOK, v)
}

// SendErrorOrLog replies with {"error": ...} and the given status.
func SendErrorOrLog(w http.ResponseWriter, log logrus.FieldLogger, status int, e error) {
	sendJSONOrLog(w, log, status, wrapError(e))
}

func sendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, status int, v any) {
	_, err := SendJSONStatus(w, status, v)
	if err != nil {
		log.WithError(err).WithField("data", v).Error("failed to send data")
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
