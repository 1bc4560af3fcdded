package client

import "github.com/charmbracelet/log"

var logger = log.WithPrefix("client")
