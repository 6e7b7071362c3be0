package completion

// Message constants
const (
	MsgShort = "Generate shell completion script"
	MsgLong  = `To load completions:

Bash:
  $ source <(scopelink completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ scopelink completion bash > /etc/bash_completion.d/scopelink
  # macOS:
  $ scopelink completion bash > /usr/local/etc/bash_completion.d/scopelink

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ scopelink completion zsh > "${fpath[1]}/_scopelink"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ scopelink completion fish | source
  # To load completions for each session, execute once:
  $ scopelink completion fish > ~/.config/fish/completions/scopelink.fish

PowerShell:
  PS> scopelink completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> scopelink completion powershell > scopelink.ps1
  # and source this file from your PowerShell profile.`
)
