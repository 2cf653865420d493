package snapshot

import (
	"encoding/json"

	"audiotour/internal/domain/entity"

	"github.com/pkg/errors"
)

func encode(state *entity.ActiveRouteState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "marshal snapshot")
	}

	return data, nil
}

func decode(data []byte) (*entity.ActiveRouteState, error) {
	var state entity.ActiveRouteState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrap(err, "unmarshal snapshot")
	}
	if state.RouteID == "" {
		return nil, errors.New("snapshot has no route id")
	}

	return &state, nil
}
