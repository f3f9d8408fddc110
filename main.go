package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/partnercheckout/lib/mypublisher"
	"github.com/MarcGrol/partnercheckout/lib/mypubsub"
	"github.com/MarcGrol/partnercheckout/lib/myqueue"
	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
	"github.com/MarcGrol/partnercheckout/lib/myuuid"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/checkoutflow"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/partner"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/rebinder"
	"github.com/MarcGrol/partnercheckout/services/sdkloader"
	"github.com/MarcGrol/partnercheckout/services/statuses"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

const (
	defaultPlatformBaseURL = "https://api.sandbox.example.com"
	defaultSDKBaseURL      = "https://www.sandbox.example.com/sdk/js"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	sessionStore, sessionStoreCleanup, err := mystore.New[checkoutapi.CheckoutSession](c)
	if err != nil {
		log.Fatalf("Error creating session store: %s", err)
	}
	defer sessionStoreCleanup()

	optionsStore, optionsStoreCleanup, err := mystore.New[checkoutapi.SavedOptions](c)
	if err != nil {
		log.Fatalf("Error creating options store: %s", err)
	}
	defer optionsStoreCleanup()

	credentialsStore, credentialsStoreCleanup, err := mystore.New[credentials.Credential](c)
	if err != nil {
		log.Fatalf("Error creating credentials store: %s", err)
	}
	defer credentialsStoreCleanup()

	transcriptStore, transcriptStoreCleanup, err := mystore.New[transcript.SessionTranscript](c)
	if err != nil {
		log.Fatalf("Error creating transcript store: %s", err)
	}
	defer transcriptStoreCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	relay := credentials.NewRelay(credentialsStore, nower)
	recorder := transcript.NewRecorder(transcriptStore, nower)
	platform := platformapi.NewClient(envOrDefault("PLATFORM_BASE_URL", defaultPlatformBaseURL))
	scripts := sdkloader.NewLoader(envOrDefault("SDK_BASE_URL", defaultSDKBaseURL), platform, relay, recorder)
	identity := checkoutflow.NewStaticIdentity(map[string]checkoutflow.FastlaneAuthentication{
		"returning@example.com": {
			Succeeded:       true,
			ProfileName:     "Jane Doe",
			ShippingAddress: "2 Side St, San Jose, CA 95131",
		},
	})

	checkoutService := checkoutflow.NewWebService(sessionStore, optionsStore, relay, platform, recorder,
		scripts, identity, rebinder.New(), queue, publisher, nower, uuider)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}

	activityStore, activityStoreCleanup, err := mystore.New[partner.MerchantActivity](c)
	if err != nil {
		log.Fatalf("Error creating activity store: %s", err)
	}
	defer activityStoreCleanup()

	partnerService := partner.NewWebService(relay, platform, recorder, activityStore, pubsub, publisher, nower)
	err = partnerService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering partner endpoints: %s", err)
	}

	statusService := statuses.NewWebService(relay, platform, recorder)
	err = statusService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering status endpoints: %s", err)
	}

	startWebServerBlocking(router)
}

func envOrDefault(name string, fallback string) string {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	return value
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
