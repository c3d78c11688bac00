package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrClientNotFound = errors.New("client not found")
var ErrProjectNotFound = errors.New("project not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already taken")
