package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	AuthTimeout = 3 * time.Second
	PlayTimeout = 40 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist             = NewErr(1, true, "Exist. ")
	ErrorsChanClosed        = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout           = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid      = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail          = NewErr(1, true, "Auth fail. ")
	ErrorsDifficultyInvalid = NewErr(1, false, "Difficulty invalid. ")
)
