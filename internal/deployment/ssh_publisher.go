package deployment

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/ssh"
)

// SSHPublisher uploads sheet snapshots to a remote host via SSH/SCP
type SSHPublisher struct {
	keyPath    string
	publishURL string
	client     *ssh.Client
	connected  bool
}

// NewSSHPublisher creates a publisher for a publish URL in user@host:path form
func NewSSHPublisher(publishURL string) *SSHPublisher {
	return &SSHPublisher{
		keyPath:    "deploy.pem",
		publishURL: publishURL,
	}
}

// parsePublishURL parses a publish URL in format: user@host:path
func (p *SSHPublisher) parsePublishURL() (user, host, remotePath string, err error) {
	if p.publishURL == "" {
		return "", "", "", fmt.Errorf("publish URL is empty")
	}

	parts := strings.SplitN(p.publishURL, "@", 2)
	if len(parts) != 2 {
		return "", "", "", fmt.Errorf("invalid publish URL format: expected user@host:path")
	}

	user = parts[0]
	hostPath := parts[1]

	hostParts := strings.SplitN(hostPath, ":", 2)
	if len(hostParts) != 2 {
		return "", "", "", fmt.Errorf("invalid publish URL format: expected user@host:path")
	}

	host = hostParts[0]
	remotePath = hostParts[1]

	return user, host, remotePath, nil
}

// Connect establishes the SSH connection
func (p *SSHPublisher) Connect() error {
	if p.connected {
		return nil
	}

	user, host, _, err := p.parsePublishURL()
	if err != nil {
		return fmt.Errorf("failed to parse publish URL: %w", err)
	}

	keyData, err := os.ReadFile(p.keyPath)
	if err != nil {
		return fmt.Errorf("failed to read SSH key file %s: %w", p.keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return fmt.Errorf("failed to parse SSH private key: %w", err)
	}

	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // In production, use proper host key verification
		Timeout:         30 * time.Second,
	}

	p.client, err = ssh.Dial("tcp", net.JoinHostPort(host, "22"), config)
	if err != nil {
		return fmt.Errorf("failed to connect to SSH server %s: %w", host, err)
	}

	p.connected = true
	log.Info().
		Str("host", host).
		Str("user", user).
		Msg("Connected to SSH server")

	return nil
}

// Disconnect closes the SSH connection
func (p *SSHPublisher) Disconnect() error {
	if p.client != nil {
		err := p.client.Close()
		p.connected = false
		p.client = nil
		return err
	}
	return nil
}

// PublishFile uploads a local file to the remote path via SCP
func (p *SSHPublisher) PublishFile(localPath, filename string) error {
	if !p.connected {
		if err := p.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
	}

	_, _, remotePath, err := p.parsePublishURL()
	if err != nil {
		return fmt.Errorf("failed to parse publish URL: %w", err)
	}

	localFile, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file %s: %w", localPath, err)
	}
	defer localFile.Close()

	fileInfo, err := localFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat local file: %w", err)
	}

	session, err := p.client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	remoteFilePath := filepath.Join(remotePath, filename)
	scpCmd := fmt.Sprintf("scp -t %s", remoteFilePath)

	stdin, err := session.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}

	if err := session.Start(scpCmd); err != nil {
		return fmt.Errorf("failed to start SCP session: %w", err)
	}

	header := fmt.Sprintf("C0644 %d %s\n", fileInfo.Size(), filename)
	if _, err := stdin.Write([]byte(header)); err != nil {
		return fmt.Errorf("failed to write SCP header: %w", err)
	}

	if _, err := io.Copy(stdin, localFile); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}

	if _, err := stdin.Write([]byte{0}); err != nil {
		return fmt.Errorf("failed to write SCP end marker: %w", err)
	}

	stdin.Close()
	if err := session.Wait(); err != nil {
		return fmt.Errorf("SCP session failed: %w", err)
	}

	log.Info().
		Str("local_path", localPath).
		Str("remote_path", remoteFilePath).
		Int64("size", fileInfo.Size()).
		Msg("Published snapshot via SCP")

	return nil
}
