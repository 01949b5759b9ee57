// Package worker implements out-of-process worker execution. A worker is a
// child process running "forge worker serve"; requests and responses travel
// as newline-delimited JSON over the child's stdin and stdout, so anything a
// task prints goes to the worker's stderr instead.
package worker

import (
	"go.trai.ch/forge/internal/core/domain"
)

type messageType string

const (
	// typeReady is sent once by the worker when it is able to accept work.
	typeReady messageType = "ready"
	// typeExecute asks the worker to run one unit of work.
	typeExecute messageType = "execute"
	// typeResult answers an execute request.
	typeResult messageType = "result"
	// typeStop asks the worker to exit cleanly.
	typeStop messageType = "stop"
)

// request is one client-to-worker message.
type request struct {
	ID   uint64       `json:"id"`
	Type messageType  `json:"type"`
	Spec *workSpecDTO `json:"spec,omitempty"`
}

// response is one worker-to-client message. Every response carries a memory
// snapshot so the client can judge the worker's health without extra round
// trips. Work failures travel in Failure, never as a broken stream.
type response struct {
	ID      uint64      `json:"id"`
	Type    messageType `json:"type"`
	PID     int         `json:"pid,omitempty"`
	Success bool        `json:"success"`
	Failure string      `json:"failure,omitempty"`
	Memory  memoryDTO   `json:"memory"`
}

type workSpecDTO struct {
	DisplayName string   `json:"displayName"`
	TaskPath    string   `json:"taskPath"`
	Command     []string `json:"command"`
	WorkingDir  string   `json:"workingDir"`
	Env         []string `json:"env,omitempty"`
}

type memoryDTO struct {
	HeapBytes uint64 `json:"heapBytes"`
	SysBytes  uint64 `json:"sysBytes"`
}

func specToDTO(spec domain.WorkSpec) *workSpecDTO {
	return &workSpecDTO{
		DisplayName: spec.DisplayName,
		TaskPath:    spec.TaskPath,
		Command:     spec.Command,
		WorkingDir:  spec.WorkingDir,
		Env:         spec.Fork.Env,
	}
}

func (m memoryDTO) toDomain() domain.MemoryStatus {
	return domain.MemoryStatus{
		HeapBytes: m.HeapBytes,
		SysBytes:  m.SysBytes,
	}
}
