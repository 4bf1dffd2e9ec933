package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"gitlab.com/semkodev/trinity/config"
	"gitlab.com/semkodev/trinity/convert"
	"gitlab.com/semkodev/trinity/crypt"
	"gitlab.com/semkodev/trinity/logs"
	"gitlab.com/semkodev/trinity/store"
)

var appConfig *viper.Viper

func init() {
	logs.Setup()
	appConfig = config.Start()
	logs.SetConfig(appConfig)
}

func main() {
	mode, err := modeForRounds(appConfig.GetInt("curl.rounds"))
	if err != nil {
		logs.Log.Fatal(err)
	}

	trytes := readTrytes()
	if len(trytes) == 0 || !convert.IsTrytes(trytes) {
		logs.Log.Fatal("Input is not a valid tryte string")
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
		if digest := cachedDigest(cache, mode, trytes); digest != "" {
			fmt.Println(digest)
			return
		}
	}

	digest, err := hash(mode, trytes)
	if err != nil {
		logs.Log.Fatalf("Hashing failed: %v", err)
	}
	fmt.Println(digest)

	if cache != nil {
		if err := cache.Set(cacheKey(mode, trytes), []byte(digest)); err != nil {
			logs.Log.Warningf("Could not cache the digest: %v", err)
		}
	}
}

func modeForRounds(rounds int) (crypt.Mode, error) {
	switch rounds {
	case crypt.NumberOfRoundsP27:
		return crypt.CurlP27, nil
	case crypt.NumberOfRoundsP81:
		return crypt.CurlP81, nil
	}
	return 0, fmt.Errorf("unsupported curl round count %d, use 27 or 81", rounds)
}

func readTrytes() string {
	if trytes := appConfig.GetString("trytes"); len(trytes) > 0 {
		return trytes
	}

	logs.Log.Debug("Reading trytes from stdin")
	var input strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		input.WriteString(strings.TrimSpace(scanner.Text()))
	}
	return input.String()
}

func openCache() store.Adapter {
	adapterType := appConfig.GetString("database.type")
	if len(adapterType) == 0 {
		return nil
	}

	cache, err := store.Open(adapterType, appConfig.GetString("database.path"), appConfig.GetString("database.prefix"))
	if err != nil {
		logs.Log.Fatalf("Could not open the digest cache: %v", err)
	}
	return cache
}

func cacheKey(mode crypt.Mode, trytes string) string {
	return mode.String() + ":" + trytes
}

func cachedDigest(cache store.Adapter, mode crypt.Mode, trytes string) string {
	digest, err := cache.Get(cacheKey(mode, trytes))
	if err != nil {
		logs.Log.Warningf("Digest cache lookup failed: %v", err)
		return ""
	}
	if digest == nil {
		return ""
	}
	logs.Log.Debug("Digest cache hit")
	return string(digest)
}

func hash(mode crypt.Mode, trytes string) (string, error) {
	trits, err := convert.TrytesToTrits(trytes)
	if err != nil {
		return "", err
	}

	curl, err := crypt.NewCurl(mode)
	if err != nil {
		return "", err
	}
	if err := curl.Absorb(trits); err != nil {
		return "", err
	}

	return convert.TritsToTrytes(curl.Squeeze(crypt.HashLength))
}
