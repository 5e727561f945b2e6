package model

// Random id generation parameters shared by all record families
const (
	IDLength   = 12
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)
