package handlers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG uploads are accepted and converted
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"field-sales/internal/database"
	"field-sales/internal/models"

	"github.com/gin-gonic/gin"
)

// ShowReport renders the daily report form.
func ShowReport(c *gin.Context) {
	showReport(c, http.StatusOK, gin.H{})
}

func showReport(c *gin.Context, status int, extra gin.H) {
	stores, err := database.AllStoreNames()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load stores")
		return
	}

	data := gin.H{
		"stores":   stores,
		"products": models.ProductNames,
		"error":    "",
		"message":  "",
	}
	for k, v := range extra {
		data[k] = v
	}
	render(c, status, "report.html", data)
}

// SubmitVisit handles one report form submission. The photograph is the only
// thing checked here; everything else is validated by the persistence layer.
func SubmitVisit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil || file.Size == 0 {
		showReport(c, http.StatusBadRequest, gin.H{"error": "Photograph required"})
		return
	}

	imageData, err := encodePhoto(file)
	if err != nil {
		showReport(c, http.StatusBadRequest, gin.H{"error": "Failed to read photograph"})
		return
	}

	now := time.Now()
	in := database.VisitInput{
		Date:                   now.Format("2006-01-02"),
		Time:                   now.Format("15:04:05"),
		SRName:                 user.FullName,
		Username:               user.Username,
		StoreName:              c.PostForm("store_name"),
		VisitType:              c.PostForm("visit_type"),
		StoreCategory:          c.PostForm("store_category"),
		PhoneNumber:            c.PostForm("phone"),
		LeadType:               c.PostForm("lead_type"),
		FollowUpDate:           c.PostForm("follow_up_date"),
		Products:               models.JoinProducts(c.PostFormArray("products")),
		OrderDetails:           c.PostForm("order_details"),
		Latitude:               c.PostForm("latitude"),
		Longitude:              c.PostForm("longitude"),
		MapsURL:                "",
		LocationRecordedAnswer: c.PostForm("location_recorded_answer"),
		ImageData:              imageData,
	}

	visit, err := database.SaveVisit(in)
	if err != nil {
		// surfaced verbatim, same as the legacy app
		showReport(c, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	showReport(c, http.StatusOK, gin.H{"message": fmt.Sprintf("Saved with ID: %d", visit.ID)})
}

// encodePhoto re-encodes the upload to JPEG before building the data URI,
// so the stored payload is a JPEG regardless of the uploaded format.
func encodePhoto(file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ListVisits shows the visit history: admins see everything, sales reps see
// their own reports.
func ListVisits(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var (
		visits []models.StoreVisit
		err    error
	)
	if user.Role == models.RoleAdmin {
		visits, err = database.AllVisits()
	} else {
		visits, err = database.VisitsByUser(user.Username)
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load visits")
		return
	}

	render(c, http.StatusOK, "visits.html", gin.H{
		"visits":  visits,
		"IsAdmin": user.Role == models.RoleAdmin,
	})
}

// UpdateLeadStatus flips the lead classification on a single visit.
func UpdateLeadStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid visit id")
		return
	}

	status := models.LeadType(c.PostForm("lead_type"))
	switch status {
	case models.LeadHot, models.LeadWarm, models.LeadCold, models.LeadDead:
		// ok
	default:
		c.String(http.StatusBadRequest, "invalid lead type")
		return
	}

	if err := database.UpdateLeadStatus(uint(id), status); err != nil {
		if errors.Is(err, database.ErrVisitNotFound) {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/visits")
}
