package tools

// RegisterCore adds every built-in tool. Order matters only for the manifest
// listing the model sees.
func (r *Registry) RegisterCore() {
	r.Register(shellTool())
	r.Register(fileReadTool())
	r.Register(fileWriteTool())
	for _, t := range memoryTools() {
		r.Register(t)
	}
	r.Register(httpRequestTool())
	r.Register(webFetchTool())
	r.Register(gitTool())
	r.Register(statusTool())
	r.Register(auditReadTool())
}
