package domain

import "time"

// Platform representa a rede social de origem de um post
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedin  Platform = "linkedin"
)

// Platforms lista todas as plataformas suportadas
var Platforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformLinkedin,
}

// IsValidPlatform verifica se a plataforma informada é suportada
func IsValidPlatform(p string) bool {
	for _, platform := range Platforms {
		if string(platform) == p {
			return true
		}
	}
	return false
}

// PostStatus representa o ciclo de vida de um post
// (draft → scheduled → published | failed; published e failed são terminais)
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
	PostStatusFailed    PostStatus = "failed"
)

// Post representa os metadados de um post publicado em uma rede social.
// Esta API só lê posts; a escrita é responsabilidade do serviço de publicação.
type Post struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"account_id"`
	Platform    Platform   `json:"platform"`
	Status      PostStatus `json:"status"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"published_at,omitempty"` // Definido uma única vez na publicação
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostStatusCounts agrega a quantidade de posts por status de uma conta
type PostStatusCounts struct {
	Draft     int `json:"draft"`
	Scheduled int `json:"scheduled"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}
