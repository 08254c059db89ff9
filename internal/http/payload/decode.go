package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const maxPayloadBytes = 1 << 20

func DecodePayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxPayloadBytes))
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
