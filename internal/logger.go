package internal

import "go.uber.org/zap"

// NewLogger returns a development logger when debug is set.
func NewLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		z   *zap.Logger
		err error
	)
	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return z.Sugar(), nil
}
