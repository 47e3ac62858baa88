package utilities

import "ecertify/pkg/logger"

func FailOnError(err error, msg string) {
	if err != nil {
		logger.Default().Panic(err, msg)
	}
}
