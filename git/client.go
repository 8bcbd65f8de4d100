package git

// Client binds the gateway operations to one repository working tree.
// Branch is captured at startup and reused for every push.
type Client struct {
	RepoPath string
	Branch   string
}

func (c *Client) Status() ([]StatusEntry, error) {
	return Status(c.RepoPath)
}

func (c *Client) Diff(path string) (string, error) {
	return Diff(c.RepoPath, path)
}

func (c *Client) StageAll(paths []string) error {
	return StageAll(c.RepoPath, paths...)
}

func (c *Client) Commit(message string) error {
	return Commit(c.RepoPath, message)
}

func (c *Client) Push() error {
	branch := c.Branch
	if branch == "" {
		// Detached or unborn HEAD at startup; push whatever is checked out.
		branch = "HEAD"
	}
	return Push(c.RepoPath, branch)
}
