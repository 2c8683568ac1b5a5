package fs

import (
	"errors"
	"syscall"
)

type errKind int

const (
	errPermanent errKind = iota
	errTransient
	errCrossDevice
)

// transientErrnos are worth another attempt; anything else is reported.
var transientErrnos = []syscall.Errno{
	syscall.EAGAIN,
	syscall.EBUSY,
	syscall.EINTR,
	syscall.ETIMEDOUT,
}

func classify(err error) errKind {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return errPermanent
	}
	if errno == syscall.EXDEV {
		return errCrossDevice
	}
	for _, t := range transientErrnos {
		if errno == t {
			return errTransient
		}
	}
	return errPermanent
}
