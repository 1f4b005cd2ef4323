package enka

import "fmt"

func playerEndpoint(uid uint64, infoOnly bool) string {
	if infoOnly {
		return fmt.Sprintf("/api/uid/%d/?info", uid)
	}
	return fmt.Sprintf("/api/uid/%d/", uid)
}

func profileEndpoint(username string) string {
	return fmt.Sprintf("/api/profile/%s/?format=json", username)
}

func hoyosEndpoint(username string) string {
	return fmt.Sprintf("/api/profile/%s/hoyos", username)
}

func hoyoEndpoint(username string, hash Hash) string {
	return fmt.Sprintf("/api/profile/%s/hoyos/%s/?format=json", username, hash)
}

func buildsEndpoint(username string, hash Hash) string {
	return fmt.Sprintf("/api/profile/%s/hoyos/%s/builds", username, hash)
}

func buildEndpoint(username string, hash Hash, buildID uint64) string {
	return fmt.Sprintf("/api/profile/%s/hoyos/%s/builds/%d", username, hash, buildID)
}
